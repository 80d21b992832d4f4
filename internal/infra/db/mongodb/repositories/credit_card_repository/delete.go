package credit_card_repository

import (
	"context"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteCreditCardRepository struct {
	Db *mongo.Database
}

func NewDeleteCreditCardRepository(db *mongo.Database) *DeleteCreditCardRepository {
	return &DeleteCreditCardRepository{Db: db}
}

func (r *DeleteCreditCardRepository) Delete(creditCardId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("credit_cards")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": creditCardId, "user_id": userId})
	return err
}
