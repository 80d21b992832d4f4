package recurring_transaction_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MarkRecurringTransactionRunRepository records the months a rule has been
// materialized for. Month keys are collected in a set so navigating back to
// an earlier month still materializes it exactly once.
type MarkRecurringTransactionRunRepository struct {
	Db *mongo.Database
}

func NewMarkRecurringTransactionRunRepository(db *mongo.Database) *MarkRecurringTransactionRunRepository {
	return &MarkRecurringTransactionRunRepository{Db: db}
}

func (r *MarkRecurringTransactionRunRepository) MarkRun(id primitive.ObjectID, userId primitive.ObjectID, monthKey string) error {
	collection := r.Db.Collection("recurring_transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userId},
		bson.M{
			"$addToSet": bson.M{"materialized_months": monthKey},
			"$set":      bson.M{"last_run": time.Now()},
		},
	)
	return err
}
