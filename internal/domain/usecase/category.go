package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCategoryRepository defines the interface for creating categories
type CreateCategoryRepository interface {
	Create(category *models.Category) (*models.Category, error)
}

// FindCategoriesRepository defines the interface for retrieving all categories of a user
type FindCategoriesRepository interface {
	Find(userId primitive.ObjectID) ([]models.Category, error)
}

// FindCategoryByIdRepository defines the interface for retrieving a single category
type FindCategoryByIdRepository interface {
	Find(categoryId primitive.ObjectID, userId primitive.ObjectID) (*models.Category, error)
}

// FindCategoryByNameRepository finds a category by its exact name
type FindCategoryByNameRepository interface {
	FindByName(name string, userId primitive.ObjectID) (*models.Category, error)
}

// FindFallbackCategoryRepository returns the category unresolved statement
// rows land in, preferring one named "outro" over the user's oldest
type FindFallbackCategoryRepository interface {
	FindFallback(userId primitive.ObjectID) (*models.Category, error)
}

// UpdateCategoryRepository defines the interface for updating categories
type UpdateCategoryRepository interface {
	Update(categoryId primitive.ObjectID, category *models.Category) (*models.Category, error)
}

// DeleteCategoryRepository defines the interface for deleting categories
type DeleteCategoryRepository interface {
	Delete(categoryId primitive.ObjectID, userId primitive.ObjectID) error
}
