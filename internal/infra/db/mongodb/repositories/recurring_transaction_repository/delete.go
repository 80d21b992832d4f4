package recurring_transaction_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteRecurringTransactionRepository struct {
	Db *mongo.Database
}

func NewDeleteRecurringTransactionRepository(db *mongo.Database) *DeleteRecurringTransactionRepository {
	return &DeleteRecurringTransactionRepository{Db: db}
}

func (r *DeleteRecurringTransactionRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("recurring_transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	return err
}
