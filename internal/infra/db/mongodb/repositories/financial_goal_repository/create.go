package financial_goal_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateFinancialGoalRepository struct {
	Db *mongo.Database
}

func NewCreateFinancialGoalRepository(db *mongo.Database) *CreateFinancialGoalRepository {
	return &CreateFinancialGoalRepository{Db: db}
}

func (r *CreateFinancialGoalRepository) Create(goal *models.FinancialGoal) (*models.FinancialGoal, error) {
	collection := r.Db.Collection("financial_goals")

	goal.Id = primitive.NewObjectID()
	goal.Icon = models.ResolveIcon(goal.Icon)
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}
