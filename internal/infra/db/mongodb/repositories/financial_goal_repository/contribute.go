package financial_goal_repository

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

// ContributeToFinancialGoalRepository applies a contribution as an atomic
// increment so concurrent contributions never lose updates.
type ContributeToFinancialGoalRepository struct {
	Db *mongo.Database
}

func NewContributeToFinancialGoalRepository(db *mongo.Database) *ContributeToFinancialGoalRepository {
	return &ContributeToFinancialGoalRepository{Db: db}
}

func (r *ContributeToFinancialGoalRepository) Contribute(goalId primitive.ObjectID, userId primitive.ObjectID, amount float64) (*models.FinancialGoal, error) {
	collection := r.Db.Collection("financial_goals")

	update := bson.M{
		"$inc": bson.M{"current_amount": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.FinancialGoal
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": goalId, "user_id": userId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
