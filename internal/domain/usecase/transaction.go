package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	presentationHelpers "github.com/controlenamao/finance-backend/internal/presentation/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateTransactionRepository defines the interface for creating transactions
type CreateTransactionRepository interface {
	Create(transaction *models.Transaction) (*models.Transaction, error)
}

// CreateManyTransactionsRepository defines the interface for batch-creating transactions
type CreateManyTransactionsRepository interface {
	CreateMany(transactions []*models.Transaction) ([]*models.Transaction, error)
}

// CreateTransactionWithBalanceRepository writes a transaction and adjusts the
// target account balance in a single database transaction
type CreateTransactionWithBalanceRepository interface {
	CreateWithBalance(transaction *models.Transaction) (*models.Transaction, error)
}

// FindTransactionsRepository defines the interface for retrieving transactions
type FindTransactionsRepository interface {
	Find(globalFilters *presentationHelpers.GlobalFilterParams) ([]models.Transaction, error)
}

// FindTransactionsByCreditCardRepository defines the interface for retrieving
// a card's full charge history
type FindTransactionsByCreditCardRepository interface {
	FindByCreditCard(creditCardId primitive.ObjectID, userId primitive.ObjectID) ([]models.Transaction, error)
}

// FindTransactionByIdRepository defines the interface for retrieving a single transaction
type FindTransactionByIdRepository interface {
	Find(transactionId primitive.ObjectID, userId primitive.ObjectID) (*models.Transaction, error)
}

// UpdateTransactionRepository defines the interface for updating transactions
type UpdateTransactionRepository interface {
	Update(transactionId primitive.ObjectID, transaction *models.Transaction) (*models.Transaction, error)
}

// DeleteTransactionsRepository defines the interface for deleting transactions
type DeleteTransactionsRepository interface {
	Delete(transactionIds []primitive.ObjectID, userId primitive.ObjectID) error
}
