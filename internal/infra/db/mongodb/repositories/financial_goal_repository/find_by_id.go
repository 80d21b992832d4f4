package financial_goal_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindFinancialGoalByIdRepository struct {
	Db *mongo.Database
}

func NewFindFinancialGoalByIdRepository(db *mongo.Database) *FindFinancialGoalByIdRepository {
	return &FindFinancialGoalByIdRepository{Db: db}
}

func (r *FindFinancialGoalByIdRepository) Find(goalId primitive.ObjectID, userId primitive.ObjectID) (*models.FinancialGoal, error) {
	collection := r.Db.Collection("financial_goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var goal models.FinancialGoal
	err := collection.FindOne(ctx, bson.M{"_id": goalId, "user_id": userId}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &goal, nil
}
