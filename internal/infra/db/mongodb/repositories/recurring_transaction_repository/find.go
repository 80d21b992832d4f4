package recurring_transaction_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindRecurringTransactionsRepository struct {
	Db *mongo.Database
}

func NewFindRecurringTransactionsRepository(db *mongo.Database) *FindRecurringTransactionsRepository {
	return &FindRecurringTransactionsRepository{Db: db}
}

func (r *FindRecurringTransactionsRepository) Find(userId primitive.ObjectID) ([]models.RecurringTransaction, error) {
	collection := r.Db.Collection("recurring_transactions")

	opts := options.Find().SetSort(bson.M{"description": 1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.RecurringTransaction
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}

	return rules, nil
}
