package redis_repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSettingsRepository persists per-user settings as JSON documents in a
// key-value store. Settings are ambient configuration: last write wins,
// nothing reconciles concurrent edits from two sessions.
type UserSettingsRepository struct {
	Client *redis.Client
}

func NewUserSettingsRepository(client *redis.Client) *UserSettingsRepository {
	return &UserSettingsRepository{Client: client}
}

func settingsKey(userId primitive.ObjectID) string {
	return "settings:" + userId.Hex()
}

func (r *UserSettingsRepository) Find(userId primitive.ObjectID) (*models.UserSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := r.Client.Get(ctx, settingsKey(userId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DefaultUserSettings(), nil
		}
		return nil, err
	}

	var settings models.UserSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		// A corrupted document falls back to defaults instead of locking
		// the user out of the settings screen.
		return models.DefaultUserSettings(), nil
	}

	return &settings, nil
}

func (r *UserSettingsRepository) Save(userId primitive.ObjectID, settings *models.UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.Client.Set(ctx, settingsKey(userId), raw, 0).Err()
}
