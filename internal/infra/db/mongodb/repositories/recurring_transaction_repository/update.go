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

type UpdateRecurringTransactionRepository struct {
	Db *mongo.Database
}

func NewUpdateRecurringTransactionRepository(db *mongo.Database) *UpdateRecurringTransactionRepository {
	return &UpdateRecurringTransactionRepository{Db: db}
}

func (r *UpdateRecurringTransactionRepository) Update(id primitive.ObjectID, rt *models.RecurringTransaction) (*models.RecurringTransaction, error) {
	collection := r.Db.Collection("recurring_transactions")

	update := bson.M{
		"$set": bson.M{
			"description":    rt.Description,
			"amount":         rt.Amount,
			"type":           rt.Type,
			"category_id":    rt.CategoryId,
			"account_id":     rt.AccountId,
			"frequency":      rt.Frequency,
			"day_of_month":   rt.DayOfMonth,
			"weekday":        rt.Weekday,
			"start_date":     rt.StartDate,
			"end_date":       rt.EndDate,
			"active":         rt.Active,
			"credit_card_id": rt.CreditCard,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.RecurringTransaction
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": rt.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
