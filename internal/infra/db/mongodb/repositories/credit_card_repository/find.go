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

// FindCreditCardsRepository handles fetching all credit cards of a user
type FindCreditCardsRepository struct {
	Db *mongo.Database
}

func NewFindCreditCardsRepository(db *mongo.Database) *FindCreditCardsRepository {
	return &FindCreditCardsRepository{Db: db}
}

func (r *FindCreditCardsRepository) Find(userId primitive.ObjectID) ([]models.CreditCard, error) {
	collection := r.Db.Collection("credit_cards")

	opts := options.Find().SetSort(bson.M{"name": 1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var creditCards []models.CreditCard
	if err := cursor.All(ctx, &creditCards); err != nil {
		return nil, err
	}

	return creditCards, nil
}
