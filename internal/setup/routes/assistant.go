package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/infra/ai"
	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssistantRoutes registers HTTP routes for the AI assistant
func AssistantRoutes(server *http.ServeMux, db *mongo.Database, aiClient *ai.Client) {
	// Chat with the assistant, which may create transactions or adjust budgets
	server.Handle("POST /assistant/chat", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeChatController(db, aiClient)),
	))

	// Suggest a category for a transaction description
	server.Handle("POST /assistant/suggest-category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeSuggestCategoryController(db, aiClient)),
	))

	// Forecast next month's budget per category
	server.Handle("POST /assistant/forecast-budget", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeForecastBudgetController(db, aiClient)),
	))
}
