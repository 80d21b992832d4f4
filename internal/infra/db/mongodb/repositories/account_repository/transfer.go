package account_repository

import (
	"context"
	"errors"

	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransferBetweenAccountsRepository debits one account and credits another
// inside a single session transaction, so a failure leaves both untouched.
type TransferBetweenAccountsRepository struct {
	Db *mongo.Database
}

func NewTransferBetweenAccountsRepository(db *mongo.Database) *TransferBetweenAccountsRepository {
	return &TransferBetweenAccountsRepository{Db: db}
}

func (r *TransferBetweenAccountsRepository) Transfer(fromId primitive.ObjectID, toId primitive.ObjectID, userId primitive.ObjectID, amount float64) error {
	collection := r.Db.Collection("accounts")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	session, err := r.Db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		debit, err := collection.UpdateOne(sc,
			bson.M{"_id": fromId, "user_id": userId},
			bson.M{"$inc": bson.M{"balance": -amount}},
		)
		if err != nil {
			return nil, err
		}
		if debit.MatchedCount == 0 {
			return nil, errors.New("source account not found")
		}

		credit, err := collection.UpdateOne(sc,
			bson.M{"_id": toId, "user_id": userId},
			bson.M{"$inc": bson.M{"balance": amount}},
		)
		if err != nil {
			return nil, err
		}
		if credit.MatchedCount == 0 {
			return nil, errors.New("destination account not found")
		}

		return nil, nil
	})

	return err
}
