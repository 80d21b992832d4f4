package category_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateCategoryRepository struct {
	Db *mongo.Database
}

func NewUpdateCategoryRepository(db *mongo.Database) *UpdateCategoryRepository {
	return &UpdateCategoryRepository{Db: db}
}

func (r *UpdateCategoryRepository) Update(categoryId primitive.ObjectID, category *models.Category) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	update := bson.M{
		"$set": bson.M{
			"name":       category.Name,
			"type":       category.Type,
			"icon":       models.ResolveIcon(category.Icon),
			"updated_at": time.Now(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Category
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": categoryId, "user_id": category.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
