package usecase

import (
	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFinancialGoalRepository defines the interface for creating goals
type CreateFinancialGoalRepository interface {
	Create(goal *models.FinancialGoal) (*models.FinancialGoal, error)
}

// FindFinancialGoalsRepository defines the interface for retrieving all goals of a user
type FindFinancialGoalsRepository interface {
	Find(userId primitive.ObjectID) ([]models.FinancialGoal, error)
}

// FindFinancialGoalByIdRepository defines the interface for retrieving a single goal
type FindFinancialGoalByIdRepository interface {
	Find(goalId primitive.ObjectID, userId primitive.ObjectID) (*models.FinancialGoal, error)
}

// UpdateFinancialGoalRepository defines the interface for updating goals
type UpdateFinancialGoalRepository interface {
	Update(goalId primitive.ObjectID, goal *models.FinancialGoal) (*models.FinancialGoal, error)
}

// ContributeToFinancialGoalRepository increments a goal's saved amount
type ContributeToFinancialGoalRepository interface {
	Contribute(goalId primitive.ObjectID, userId primitive.ObjectID, amount float64) (*models.FinancialGoal, error)
}

// DeleteFinancialGoalRepository defines the interface for deleting goals
type DeleteFinancialGoalRepository interface {
	Delete(goalId primitive.ObjectID, userId primitive.ObjectID) error
}
