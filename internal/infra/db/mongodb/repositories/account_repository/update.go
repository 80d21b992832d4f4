package account_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateAccountRepository struct {
	Db *mongo.Database
}

func NewUpdateAccountRepository(db *mongo.Database) *UpdateAccountRepository {
	return &UpdateAccountRepository{Db: db}
}

func (r *UpdateAccountRepository) Update(accountId primitive.ObjectID, account *models.Account) (*models.Account, error) {
	collection := r.Db.Collection("accounts")

	update := bson.M{
		"$set": bson.M{
			"name":       account.Name,
			"bank":       account.Bank,
			"icon":       models.ResolveIcon(account.Icon),
			"balance":    account.Balance,
			"updated_at": time.Now(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Account
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": accountId, "user_id": account.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
