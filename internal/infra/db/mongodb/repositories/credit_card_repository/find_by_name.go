package credit_card_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindCreditCardByNameRepository struct {
	Db *mongo.Database
}

func NewFindCreditCardByNameRepository(db *mongo.Database) *FindCreditCardByNameRepository {
	return &FindCreditCardByNameRepository{Db: db}
}

func (r *FindCreditCardByNameRepository) FindByName(name string, userId primitive.ObjectID) (*models.CreditCard, error) {
	collection := r.Db.Collection("credit_cards")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var creditCard models.CreditCard
	err := collection.FindOne(ctx, bson.M{"name": name, "user_id": userId}).Decode(&creditCard)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &creditCard, nil
}
