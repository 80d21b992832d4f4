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

type UpdateTagRepository struct {
	Db *mongo.Database
}

func NewUpdateTagRepository(db *mongo.Database) *UpdateTagRepository {
	return &UpdateTagRepository{Db: db}
}

func (r *UpdateTagRepository) Update(tagId primitive.ObjectID, tag *models.Tag) (*models.Tag, error) {
	collection := r.Db.Collection("tags")

	update := bson.M{
		"$set": bson.M{
			"name":  tag.Name,
			"color": tag.Color,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Tag
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": tagId, "user_id": tag.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
