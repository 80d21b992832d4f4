package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardRoutes registers HTTP routes for dashboard aggregations
func DashboardRoutes(server *http.ServeMux, db *mongo.Database) {
	// Get the monthly summary with totals and per category spending
	server.Handle("GET /dashboard/summary", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSummaryController(db)),
	))
}
