package account_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindAccountByNameRepository struct {
	Db *mongo.Database
}

func NewFindAccountByNameRepository(db *mongo.Database) *FindAccountByNameRepository {
	return &FindAccountByNameRepository{Db: db}
}

func (r *FindAccountByNameRepository) FindByName(name string, userId primitive.ObjectID) (*models.Account, error) {
	collection := r.Db.Collection("accounts")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var account models.Account
	err := collection.FindOne(ctx, bson.M{"name": name, "user_id": userId}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}
