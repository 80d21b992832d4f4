package transaction_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateManyTransactionsRepository struct {
	Db *mongo.Database
}

func NewCreateManyTransactionsRepository(db *mongo.Database) *CreateManyTransactionsRepository {
	return &CreateManyTransactionsRepository{Db: db}
}

func (r *CreateManyTransactionsRepository) CreateMany(transactions []*models.Transaction) ([]*models.Transaction, error) {
	if len(transactions) == 0 {
		return transactions, nil
	}

	collection := r.Db.Collection("transactions")

	now := time.Now()
	docs := make([]any, 0, len(transactions))
	for _, t := range transactions {
		t.Id = primitive.NewObjectID()
		t.CreatedAt = now
		t.UpdatedAt = now
		docs = append(docs, t)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
