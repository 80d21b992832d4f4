package account_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteAccountRepository struct {
	Db *mongo.Database
}

func NewDeleteAccountRepository(db *mongo.Database) *DeleteAccountRepository {
	return &DeleteAccountRepository{Db: db}
}

func (r *DeleteAccountRepository) Delete(accountId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("accounts")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": accountId, "user_id": userId})
	return err
}
