package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAccountRepository defines the interface for creating accounts
type CreateAccountRepository interface {
	Create(account *models.Account) (*models.Account, error)
}

// FindAccountsRepository defines the interface for retrieving all accounts of a user
type FindAccountsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Account, error)
}

// FindAccountByIdRepository defines the interface for retrieving a single account
type FindAccountByIdRepository interface {
	Find(accountId primitive.ObjectID, userId primitive.ObjectID) (*models.Account, error)
}

// FindAccountByNameRepository defines the interface for finding an account by name
type FindAccountByNameRepository interface {
	FindByName(name string, userId primitive.ObjectID) (*models.Account, error)
}

// FindFirstAccountRepository returns the user's oldest account, used as the
// default when an operation does not name one
type FindFirstAccountRepository interface {
	FindFirst(userId primitive.ObjectID) (*models.Account, error)
}

// UpdateAccountRepository defines the interface for updating accounts
type UpdateAccountRepository interface {
	Update(accountId primitive.ObjectID, account *models.Account) (*models.Account, error)
}

// DeleteAccountRepository defines the interface for deleting accounts
type DeleteAccountRepository interface {
	Delete(accountId primitive.ObjectID, userId primitive.ObjectID) error
}

// TransferBetweenAccountsRepository moves an amount between two accounts of
// the same user atomically
type TransferBetweenAccountsRepository interface {
	Transfer(fromId primitive.ObjectID, toId primitive.ObjectID, userId primitive.ObjectID, amount float64) error
}
