package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRoutes registers HTTP routes for account operations
func AccountRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new account
	server.Handle("POST /account", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateAccountController(db)),
	))

	// Get all accounts
	server.Handle("GET /account", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetAccountsController(db)),
	))

	// Get an account by ID
	server.Handle("GET /account/{accountId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetAccountByIdController(db)),
	))

	// Update an account
	server.Handle("PUT /account/{accountId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateAccountController(db)),
	))

	// Delete an account
	server.Handle("DELETE /account/{accountId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteAccountController(db)),
	))

	// Transfer between two accounts
	server.Handle("POST /account/transference", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeTransferenceController(db)),
	))
}
