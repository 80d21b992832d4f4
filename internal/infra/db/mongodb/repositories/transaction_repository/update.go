package transaction_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateTransactionRepository struct {
	Db *mongo.Database
}

func NewUpdateTransactionRepository(db *mongo.Database) *UpdateTransactionRepository {
	return &UpdateTransactionRepository{Db: db}
}

func (r *UpdateTransactionRepository) Update(transactionId primitive.ObjectID, transaction *models.Transaction) (*models.Transaction, error) {
	collection := r.Db.Collection("transactions")

	update := bson.M{
		"$set": bson.M{
			"type":               transaction.Type,
			"amount":             transaction.Amount,
			"date":               transaction.Date,
			"description":        transaction.Description,
			"category_id":        transaction.CategoryId,
			"account_id":         transaction.AccountId,
			"credit_card_id":     transaction.CreditCardId,
			"is_installment":     transaction.IsInstallment,
			"total_installments": transaction.TotalInstallments,
			"updated_at":         time.Now(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Transaction
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": transactionId, "user_id": transaction.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
