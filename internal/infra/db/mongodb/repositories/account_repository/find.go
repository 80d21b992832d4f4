package account_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindAccountsRepository handles fetching all accounts of a user
type FindAccountsRepository struct {
	Db *mongo.Database
}

func NewFindAccountsRepository(db *mongo.Database) *FindAccountsRepository {
	return &FindAccountsRepository{Db: db}
}

func (r *FindAccountsRepository) Find(userId primitive.ObjectID) ([]models.Account, error) {
	collection := r.Db.Collection("accounts")

	opts := options.Find().SetSort(bson.M{"created_at": 1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}
