package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// FinancialGoalRoutes registers HTTP routes for financial goal operations
func FinancialGoalRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new financial goal
	server.Handle("POST /financial-goal", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateFinancialGoalController(db)),
	))

	// Get all financial goals
	server.Handle("GET /financial-goal", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetFinancialGoalsController(db)),
	))

	// Update a financial goal
	server.Handle("PUT /financial-goal/{goalId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateFinancialGoalController(db)),
	))

	// Add an amount to a goal's saved total
	server.Handle("POST /financial-goal/{goalId}/contribute", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeContributeFinancialGoalController(db)),
	))

	// Delete a financial goal
	server.Handle("DELETE /financial-goal/{goalId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteFinancialGoalController(db)),
	))
}
