package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreditCardRoutes registers HTTP routes for credit card operations
func CreditCardRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new credit card
	server.Handle("POST /credit-card", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCreditCardController(db)),
	))

	// Get all credit cards
	server.Handle("GET /credit-card", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCreditCardsController(db)),
	))

	// Get a credit card by ID
	server.Handle("GET /credit-card/{creditCardId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCreditCardByIdController(db)),
	))

	// Get the statement for a billing cycle
	server.Handle("GET /credit-card/{creditCardId}/statement", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCreditCardStatementController(db)),
	))

	// Update a credit card
	server.Handle("PUT /credit-card/{creditCardId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateCreditCardController(db)),
	))

	// Delete a credit card
	server.Handle("DELETE /credit-card/{creditCardId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteCreditCardController(db)),
	))
}
