package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/redis_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/settings"
	"github.com/redis/go-redis/v9"
)

// MakeGetSettingsController creates the controller for retrieving user settings
func MakeGetSettingsController(redisClient *redis.Client) *controllers.GetSettingsController {
	settingsRepo := redis_repository.NewUserSettingsRepository(redisClient)
	return controllers.NewGetSettingsController(settingsRepo)
}

// MakeUpdateSettingsController creates the controller for replacing user settings
func MakeUpdateSettingsController(redisClient *redis.Client) *controllers.UpdateSettingsController {
	settingsRepo := redis_repository.NewUserSettingsRepository(redisClient)
	return controllers.NewUpdateSettingsController(settingsRepo)
}
