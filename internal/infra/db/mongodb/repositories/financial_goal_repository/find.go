package financial_goal_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindFinancialGoalsRepository struct {
	Db *mongo.Database
}

func NewFindFinancialGoalsRepository(db *mongo.Database) *FindFinancialGoalsRepository {
	return &FindFinancialGoalsRepository{Db: db}
}

func (r *FindFinancialGoalsRepository) Find(userId primitive.ObjectID) ([]models.FinancialGoal, error) {
	collection := r.Db.Collection("financial_goals")

	opts := options.Find().SetSort(bson.M{"created_at": 1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []models.FinancialGoal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}

	return goals, nil
}
