package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTagRepository defines the interface for creating tags
type CreateTagRepository interface {
	Create(tag *models.Tag) (*models.Tag, error)
}

// FindTagsRepository defines the interface for retrieving all tags of a user
type FindTagsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Tag, error)
}

// UpdateTagRepository defines the interface for updating tags
type UpdateTagRepository interface {
	Update(tagId primitive.ObjectID, tag *models.Tag) (*models.Tag, error)
}

// DeleteTagRepository defines the interface for deleting tags
type DeleteTagRepository interface {
	Delete(tagId primitive.ObjectID, userId primitive.ObjectID) error
}
