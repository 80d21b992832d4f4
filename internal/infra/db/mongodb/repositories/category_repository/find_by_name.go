package category_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindCategoryByNameRepository resolves a category by its exact name. The
// assistant tools rely on the exact match: a near miss is an error, not a
// fuzzy hit.
type FindCategoryByNameRepository struct {
	Db *mongo.Database
}

func NewFindCategoryByNameRepository(db *mongo.Database) *FindCategoryByNameRepository {
	return &FindCategoryByNameRepository{Db: db}
}

func (r *FindCategoryByNameRepository) FindByName(name string, userId primitive.ObjectID) (*models.Category, error) {
	collection := r.Db.Collection("categories")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var category models.Category
	err := collection.FindOne(ctx, bson.M{"name": name, "user_id": userId}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}
