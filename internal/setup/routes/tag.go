package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// TagRoutes registers HTTP routes for tag operations
func TagRoutes(server *http.ServeMux, db *mongo.Database) {
	// Create a new tag
	server.Handle("POST /tag", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateTagController(db)),
	))

	// Get all tags
	server.Handle("GET /tag", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetTagsController(db)),
	))

	// Update a tag
	server.Handle("PUT /tag/{tagId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateTagController(db)),
	))

	// Delete a tag
	server.Handle("DELETE /tag/{tagId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteTagController(db)),
	))
}
