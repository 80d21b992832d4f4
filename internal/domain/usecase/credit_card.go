package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCreditCardRepository defines the interface for creating credit cards
type CreateCreditCardRepository interface {
	Create(creditCard *models.CreditCard) (*models.CreditCard, error)
}

// FindCreditCardsRepository defines the interface for retrieving all credit cards of a user
type FindCreditCardsRepository interface {
	Find(userId primitive.ObjectID) ([]models.CreditCard, error)
}

// FindCreditCardByIdRepository defines the interface for retrieving a single credit card
type FindCreditCardByIdRepository interface {
	Find(creditCardId primitive.ObjectID, userId primitive.ObjectID) (*models.CreditCard, error)
}

// FindCreditCardByNameRepository finds a credit card by name within a user's namespace
type FindCreditCardByNameRepository interface {
	FindByName(name string, userId primitive.ObjectID) (*models.CreditCard, error)
}

// UpdateCreditCardRepository defines the interface for updating credit cards
type UpdateCreditCardRepository interface {
	Update(creditCardId primitive.ObjectID, creditCard *models.CreditCard) (*models.CreditCard, error)
}

// DeleteCreditCardRepository defines the interface for deleting credit cards
type DeleteCreditCardRepository interface {
	Delete(creditCardId primitive.ObjectID, userId primitive.ObjectID) error
}
