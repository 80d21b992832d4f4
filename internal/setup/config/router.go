package config

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/infra/ai"
	"github.com/controlenamao/finance-backend/internal/setup/routes"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client, aiClient *ai.Client) {
	apiServer := http.NewServeMux()
	routes.AccountRoutes(apiServer, db)
	routes.TransactionRoutes(apiServer, db, redisClient)
	routes.CreditCardRoutes(apiServer, db)
	routes.CategoryRoutes(apiServer, db)
	routes.BudgetRoutes(apiServer, db)
	routes.FinancialGoalRoutes(apiServer, db)
	routes.TagRoutes(apiServer, db)
	routes.RecurringTransactionRoutes(apiServer, db)
	routes.SettingsRoutes(apiServer, redisClient)
	routes.DashboardRoutes(apiServer, db)
	routes.AssistantRoutes(apiServer, db, aiClient)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
