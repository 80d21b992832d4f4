package transaction_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteTransactionsRepository removes transactions by id. Deleting an
// installment original removes the whole group, since projections are
// derived from it and never stored.
type DeleteTransactionsRepository struct {
	Db *mongo.Database
}

func NewDeleteTransactionsRepository(db *mongo.Database) *DeleteTransactionsRepository {
	return &DeleteTransactionsRepository{Db: db}
}

func (r *DeleteTransactionsRepository) Delete(transactionIds []primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteMany(ctx, bson.M{
		"_id":     bson.M{"$in": transactionIds},
		"user_id": userId,
	})
	return err
}
