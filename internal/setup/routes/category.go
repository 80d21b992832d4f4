package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryRoutes registers HTTP routes for category operations
func CategoryRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new category
	server.Handle("POST /category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCategoryController(db)),
	))

	// Get all categories
	server.Handle("GET /category", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCategoriesController(db)),
	))

	// Get a category by ID
	server.Handle("GET /category/{categoryId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCategoryByIdController(db)),
	))

	// Update a category
	server.Handle("PUT /category/{categoryId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateCategoryController(db)),
	))

	// Delete a category
	server.Handle("DELETE /category/{categoryId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteCategoryController(db)),
	))
}
