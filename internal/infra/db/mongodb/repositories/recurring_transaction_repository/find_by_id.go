package recurring_transaction_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecurringTransactionByIdRepository struct {
	Db *mongo.Database
}

func NewFindRecurringTransactionByIdRepository(db *mongo.Database) *FindRecurringTransactionByIdRepository {
	return &FindRecurringTransactionByIdRepository{Db: db}
}

func (r *FindRecurringTransactionByIdRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.RecurringTransaction, error) {
	collection := r.Db.Collection("recurring_transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var rule models.RecurringTransaction
	err := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId}).Decode(&rule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &rule, nil
}
