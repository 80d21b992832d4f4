package tag_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateTagRepository struct {
	Db *mongo.Database
}

func NewCreateTagRepository(db *mongo.Database) *CreateTagRepository {
	return &CreateTagRepository{Db: db}
}

func (r *CreateTagRepository) Create(tag *models.Tag) (*models.Tag, error) {
	collection := r.Db.Collection("tags")

	tag.Id = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, tag)
	if err != nil {
		return nil, err
	}

	return tag, nil
}
