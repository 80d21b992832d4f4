package recurring_transaction_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecurringTransactionRepository struct {
	Db *mongo.Database
}

func NewCreateRecurringTransactionRepository(db *mongo.Database) *CreateRecurringTransactionRepository {
	return &CreateRecurringTransactionRepository{Db: db}
}

func (r *CreateRecurringTransactionRepository) Create(rt *models.RecurringTransaction) (*models.RecurringTransaction, error) {
	collection := r.Db.Collection("recurring_transactions")

	rt.Id = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, rt)
	if err != nil {
		return nil, err
	}

	return rt, nil
}
