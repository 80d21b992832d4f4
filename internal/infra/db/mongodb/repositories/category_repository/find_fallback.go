package category_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindFallbackCategoryRepository returns the category unresolved statement
// rows land in: the one named "outro" when the user has it, otherwise the
// oldest category.
type FindFallbackCategoryRepository struct {
	Db *mongo.Database
}

func NewFindFallbackCategoryRepository(db *mongo.Database) *FindFallbackCategoryRepository {
	return &FindFallbackCategoryRepository{Db: db}
}

func (r *FindFallbackCategoryRepository) FindFallback(userId primitive.ObjectID) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var category models.Category
	err := collection.FindOne(ctx, bson.M{
		"user_id": userId,
		"name":    bson.M{"$regex": "^outro$", "$options": "i"},
	}).Decode(&category)
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	opts := options.FindOne().SetSort(bson.M{"created_at": 1})
	err = collection.FindOne(ctx, bson.M{"user_id": userId}, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}
