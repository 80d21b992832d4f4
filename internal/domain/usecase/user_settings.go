package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FindUserSettingsRepository loads a user's settings from the key-value
// store, returning defaults when nothing is stored yet
type FindUserSettingsRepository interface {
	Find(userId primitive.ObjectID) (*models.UserSettings, error)
}

// SaveUserSettingsRepository persists a user's settings to the key-value store
type SaveUserSettingsRepository interface {
	Save(userId primitive.ObjectID, settings *models.UserSettings) error
}
