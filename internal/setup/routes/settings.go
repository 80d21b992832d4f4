package routes

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/setup/adapters"
	"github.com/controlenamao/finance-backend/internal/setup/factory"
	"github.com/controlenamao/finance-backend/internal/setup/middlewares"
	"github.com/redis/go-redis/v9"
)

// SettingsRoutes registers HTTP routes for user settings operations
func SettingsRoutes(server *http.ServeMux, redisClient *redis.Client) {
	// Get the user's settings, falling back to defaults
	server.Handle("GET /settings", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSettingsController(redisClient)),
	))

	// Replace the user's settings
	server.Handle("PUT /settings", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateSettingsController(redisClient)),
	))
}
