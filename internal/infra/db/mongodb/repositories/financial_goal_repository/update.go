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

type UpdateFinancialGoalRepository struct {
	Db *mongo.Database
}

func NewUpdateFinancialGoalRepository(db *mongo.Database) *UpdateFinancialGoalRepository {
	return &UpdateFinancialGoalRepository{Db: db}
}

func (r *UpdateFinancialGoalRepository) Update(goalId primitive.ObjectID, goal *models.FinancialGoal) (*models.FinancialGoal, error) {
	collection := r.Db.Collection("financial_goals")

	update := bson.M{
		"$set": bson.M{
			"name":           goal.Name,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"deadline":       goal.Deadline,
			"icon":           models.ResolveIcon(goal.Icon),
			"updated_at":     time.Now(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.FinancialGoal
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": goalId, "user_id": goal.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
