package category_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCategoryRepository struct {
	Db *mongo.Database
}

func NewCreateCategoryRepository(db *mongo.Database) *CreateCategoryRepository {
	return &CreateCategoryRepository{Db: db}
}

func (r *CreateCategoryRepository) Create(category *models.Category) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	category.Id = primitive.NewObjectID()
	category.Icon = models.ResolveIcon(category.Icon)
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}

	return category, nil
}
