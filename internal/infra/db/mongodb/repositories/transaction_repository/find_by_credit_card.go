package transaction_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindTransactionsByCreditCardRepository fetches every transaction charged
// to one card, regardless of date. The statement view needs the full history
// because an installment purchase from months ago still projects lines into
// the viewed cycle.
type FindTransactionsByCreditCardRepository struct {
	Db *mongo.Database
}

func NewFindTransactionsByCreditCardRepository(db *mongo.Database) *FindTransactionsByCreditCardRepository {
	return &FindTransactionsByCreditCardRepository{Db: db}
}

func (r *FindTransactionsByCreditCardRepository) FindByCreditCard(creditCardId primitive.ObjectID, userId primitive.ObjectID) ([]models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	filter := bson.M{"user_id": userId, "credit_card_id": creditCardId}
	opts := options.Find().SetSort(bson.M{"date": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}
