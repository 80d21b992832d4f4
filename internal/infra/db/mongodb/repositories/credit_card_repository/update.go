package credit_card_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateCreditCardRepository struct {
	Db *mongo.Database
}

func NewUpdateCreditCardRepository(db *mongo.Database) *UpdateCreditCardRepository {
	return &UpdateCreditCardRepository{Db: db}
}

func (r *UpdateCreditCardRepository) Update(creditCardId primitive.ObjectID, creditCard *models.CreditCard) (*models.CreditCard, error) {
	collection := r.Db.Collection("credit_cards")

	update := bson.M{
		"$set": bson.M{
			"name":      creditCard.Name,
			"last4":     creditCard.Last4,
			"limit":     creditCard.Limit,
			"close_day": creditCard.CloseDay,
			"due_day":   creditCard.DueDay,
			"brand":     creditCard.Brand,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.CreditCard
	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": creditCardId, "user_id": creditCard.UserId}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
