package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBudgetRepository defines the interface for creating budgets
type CreateBudgetRepository interface {
	Create(budget *models.Budget) (*models.Budget, error)
}

// FindBudgetsRepository defines the interface for retrieving all budgets of a user
type FindBudgetsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Budget, error)
}

// FindBudgetByCategoryIdRepository finds the budget attached to a category
type FindBudgetByCategoryIdRepository interface {
	FindByCategoryId(categoryId primitive.ObjectID, userId primitive.ObjectID) (*models.Budget, error)
}

// UpdateBudgetAmountRepository overwrites a budget's amount
type UpdateBudgetAmountRepository interface {
	UpdateAmount(budgetId primitive.ObjectID, amount float64) (*models.Budget, error)
}

// DeleteBudgetRepository defines the interface for deleting budgets
type DeleteBudgetRepository interface {
	Delete(budgetId primitive.ObjectID, userId primitive.ObjectID) error
}
