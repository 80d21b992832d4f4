package account_repository

import (
	"context"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateAccountRepository struct {
	Db *mongo.Database
}

func NewCreateAccountRepository(db *mongo.Database) *CreateAccountRepository {
	return &CreateAccountRepository{Db: db}
}

func (r *CreateAccountRepository) Create(account *models.Account) (*models.Account, error) {
	collection := r.Db.Collection("accounts")

	account.Id = primitive.NewObjectID()
	account.Icon = models.ResolveIcon(account.Icon)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, account)
	if err != nil {
		return nil, err
	}

	return account, nil
}
