package transaction_repository

import (
	"context"
	"errors"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateTransactionWithBalanceRepository inserts the transaction and applies
// its effect on the account balance ($inc) in one session transaction.
// Because the balance write is an atomic increment, concurrent saves against
// the same account commute.
type CreateTransactionWithBalanceRepository struct {
	Db *mongo.Database
}

func NewCreateTransactionWithBalanceRepository(db *mongo.Database) *CreateTransactionWithBalanceRepository {
	return &CreateTransactionWithBalanceRepository{Db: db}
}

func (r *CreateTransactionWithBalanceRepository) CreateWithBalance(transaction *models.Transaction) (*models.Transaction, error) {
	transactions := r.Db.Collection("transactions")
	accounts := r.Db.Collection("accounts")

	transaction.Id = primitive.NewObjectID()
	transaction.CreatedAt = time.Now()
	transaction.UpdatedAt = transaction.CreatedAt

	delta := transaction.Amount
	if transaction.Type == "EXPENSE" {
		delta = -delta
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	session, err := r.Db.Client().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		if _, err := transactions.InsertOne(sc, transaction); err != nil {
			return nil, err
		}

		result, err := accounts.UpdateOne(sc,
			bson.M{"_id": transaction.AccountId, "user_id": transaction.UserId},
			bson.M{"$inc": bson.M{"balance": delta}},
		)
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, errors.New("account not found")
		}

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}
