package transaction_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindTransactionByIdRepository struct {
	Db *mongo.Database
}

func NewFindTransactionByIdRepository(db *mongo.Database) *FindTransactionByIdRepository {
	return &FindTransactionByIdRepository{Db: db}
}

func (r *FindTransactionByIdRepository) Find(transactionId primitive.ObjectID, userId primitive.ObjectID) (*models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var transaction models.Transaction
	err := collection.FindOne(ctx, bson.M{"_id": transactionId, "user_id": userId}).Decode(&transaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &transaction, nil
}
