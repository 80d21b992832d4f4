package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionRoutes registers HTTP routes for transaction operations
func TransactionRoutes(server *http.ServeMux, db *mongo.Database, redisClient *redis.Client) {
	// Create a new transaction
	server.Handle("POST /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateTransactionController(db)),
	))

	// Get transactions filtered by month, year, type or account
	server.Handle("GET /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetTransactionsController(db)),
	))

	// Export transactions as CSV or XLSX
	server.Handle("GET /transaction/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportTransactionsController(db, redisClient)),
	))

	// Import transactions from a CSV or XLSX statement file
	server.Handle("POST /transaction/import", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeImportTransactionsController(db)),
	))

	// Get a transaction by ID
	server.Handle("GET /transaction/{transactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetTransactionByIdController(db)),
	))

	// Update a transaction
	server.Handle("PUT /transaction/{transactionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateTransactionController(db)),
	))

	// Delete transactions by comma separated ids
	server.Handle("DELETE /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteTransactionsController(db)),
	))
}
