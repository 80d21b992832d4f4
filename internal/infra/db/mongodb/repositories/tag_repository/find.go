package tag_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindTagsRepository struct {
	Db *mongo.Database
}

func NewFindTagsRepository(db *mongo.Database) *FindTagsRepository {
	return &FindTagsRepository{Db: db}
}

func (r *FindTagsRepository) Find(userId primitive.ObjectID) ([]models.Tag, error) {
	collection := r.Db.Collection("tags")

	opts := options.Find().SetSort(bson.M{"name": 1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []models.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}
