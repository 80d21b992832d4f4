package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// BudgetRoutes registers HTTP routes for budget operations
func BudgetRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new budget for a category
	server.Handle("POST /budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateBudgetController(db)),
	))

	// Get all budgets with the spent amount for the requested month
	server.Handle("GET /budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetBudgetsController(db)),
	))

	// Update a budget amount
	server.Handle("PUT /budget/{budgetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBudgetController(db)),
	))

	// Delete a budget
	server.Handle("DELETE /budget/{budgetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteBudgetController(db)),
	))
}
