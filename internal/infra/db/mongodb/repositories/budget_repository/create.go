package budget_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBudgetRepository struct {
	Db *mongo.Database
}

func NewCreateBudgetRepository(db *mongo.Database) *CreateBudgetRepository {
	return &CreateBudgetRepository{Db: db}
}

func (r *CreateBudgetRepository) Create(budget *models.Budget) (*models.Budget, error) {
	collection := r.Db.Collection("budgets")

	budget.Id = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, budget)
	if err != nil {
		return nil, err
	}

	return budget, nil
}
