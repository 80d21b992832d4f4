package budget_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBudgetsRepository struct {
	Db *mongo.Database
}

func NewFindBudgetsRepository(db *mongo.Database) *FindBudgetsRepository {
	return &FindBudgetsRepository{Db: db}
}

func (r *FindBudgetsRepository) Find(userId primitive.ObjectID) ([]models.Budget, error) {
	collection := r.Db.Collection("budgets")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var budgets []models.Budget
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, err
	}

	return budgets, nil
}
