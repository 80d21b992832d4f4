package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateRecurringTransactionRepository defines the interface for creating recurring rules
type CreateRecurringTransactionRepository interface {
	Create(rt *models.RecurringTransaction) (*models.RecurringTransaction, error)
}

// FindRecurringTransactionsRepository defines the interface for retrieving all rules of a user
type FindRecurringTransactionsRepository interface {
	Find(userId primitive.ObjectID) ([]models.RecurringTransaction, error)
}

// FindRecurringTransactionByIdRepository defines the interface for retrieving a single rule
type FindRecurringTransactionByIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.RecurringTransaction, error)
}

// UpdateRecurringTransactionRepository defines the interface for updating rules
type UpdateRecurringTransactionRepository interface {
	Update(id primitive.ObjectID, rt *models.RecurringTransaction) (*models.RecurringTransaction, error)
}

// MarkRecurringTransactionRunRepository records that a rule has been
// materialized for a month ("yyyy-MM" key)
type MarkRecurringTransactionRunRepository interface {
	MarkRun(id primitive.ObjectID, userId primitive.ObjectID, monthKey string) error
}

// DeleteRecurringTransactionRepository defines the interface for deleting rules
type DeleteRecurringTransactionRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}
