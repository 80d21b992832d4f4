package tag_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteTagRepository struct {
	Db *mongo.Database
}

func NewDeleteTagRepository(db *mongo.Database) *DeleteTagRepository {
	return &DeleteTagRepository{Db: db}
}

func (r *DeleteTagRepository) Delete(tagId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("tags")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": tagId, "user_id": userId})
	return err
}
