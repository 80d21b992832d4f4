package account_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindFirstAccountRepository returns the user's oldest account. The
// assistant tools and the importer fall back to it when no account is named.
type FindFirstAccountRepository struct {
	Db *mongo.Database
}

func NewFindFirstAccountRepository(db *mongo.Database) *FindFirstAccountRepository {
	return &FindFirstAccountRepository{Db: db}
}

func (r *FindFirstAccountRepository) FindFirst(userId primitive.ObjectID) (*models.Account, error) {
	collection := r.Db.Collection("accounts")

	opts := options.FindOne().SetSort(bson.M{"created_at": 1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var account models.Account
	err := collection.FindOne(ctx, bson.M{"user_id": userId}, opts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}
