package financial_goal_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteFinancialGoalRepository struct {
	Db *mongo.Database
}

func NewDeleteFinancialGoalRepository(db *mongo.Database) *DeleteFinancialGoalRepository {
	return &DeleteFinancialGoalRepository{Db: db}
}

func (r *DeleteFinancialGoalRepository) Delete(goalId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("financial_goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": goalId, "user_id": userId})
	return err
}
