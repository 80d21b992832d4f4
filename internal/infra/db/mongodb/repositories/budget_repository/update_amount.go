package budget_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateBudgetAmountRepository struct {
	Db *mongo.Database
}

func NewUpdateBudgetAmountRepository(db *mongo.Database) *UpdateBudgetAmountRepository {
	return &UpdateBudgetAmountRepository{Db: db}
}

func (r *UpdateBudgetAmountRepository) UpdateAmount(budgetId primitive.ObjectID, amount float64) (*models.Budget, error) {
	collection := r.Db.Collection("budgets")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Budget
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": budgetId},
		bson.M{"$set": bson.M{"amount": amount}},
		opts,
	).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
