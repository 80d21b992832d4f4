package credit_card_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCreditCardRepository struct {
	Db *mongo.Database
}

func NewCreateCreditCardRepository(db *mongo.Database) *CreateCreditCardRepository {
	return &CreateCreditCardRepository{Db: db}
}

func (r *CreateCreditCardRepository) Create(creditCard *models.CreditCard) (*models.CreditCard, error) {
	collection := r.Db.Collection("credit_cards")

	creditCard.Id = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, creditCard)
	if err != nil {
		return nil, err
	}

	return creditCard, nil
}
