package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecurringTransactionRoutes registers HTTP routes for recurring transaction operations
func RecurringTransactionRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new recurring transaction rule
	server.Handle("POST /recurring-transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateRecurringTransactionController(db)),
	))

	// Get all recurring transaction rules
	server.Handle("GET /recurring-transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecurringTransactionsController(db)),
	))

	// Materialize the pending occurrences of every rule for a month
	server.Handle("POST /recurring-transaction/materialize", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeMaterializeRecurringTransactionsController(db)),
	))

	// Update a recurring transaction rule
	server.Handle("PUT /recurring-transaction/{recurringTransactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateRecurringTransactionController(db)),
	))

	// Delete a recurring transaction rule
	server.Handle("DELETE /recurring-transaction/{recurringTransactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteRecurringTransactionController(db)),
	))
}
