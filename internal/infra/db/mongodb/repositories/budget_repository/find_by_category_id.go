package budget_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBudgetByCategoryIdRepository struct {
	Db *mongo.Database
}

func NewFindBudgetByCategoryIdRepository(db *mongo.Database) *FindBudgetByCategoryIdRepository {
	return &FindBudgetByCategoryIdRepository{Db: db}
}

func (r *FindBudgetByCategoryIdRepository) FindByCategoryId(categoryId primitive.ObjectID, userId primitive.ObjectID) (*models.Budget, error) {
	collection := r.Db.Collection("budgets")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var budget models.Budget
	err := collection.FindOne(ctx, bson.M{"category_id": categoryId, "user_id": userId}).Decode(&budget)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}
