package budget_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBudgetRepository struct {
	Db *mongo.Database
}

func NewDeleteBudgetRepository(db *mongo.Database) *DeleteBudgetRepository {
	return &DeleteBudgetRepository{Db: db}
}

func (r *DeleteBudgetRepository) Delete(budgetId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("budgets")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": budgetId, "user_id": userId})
	return err
}
