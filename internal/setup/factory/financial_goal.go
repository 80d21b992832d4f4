package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/financial_goal_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/financial_goal"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateFinancialGoalController creates the controller for creating financial goals
func MakeCreateFinancialGoalController(db *mongo.Database) *controllers.CreateFinancialGoalController {
	createRepo := financial_goal_repository.NewCreateFinancialGoalRepository(db)
	return controllers.NewCreateFinancialGoalController(createRepo)
}

// MakeGetFinancialGoalsController creates the controller for retrieving financial goals
func MakeGetFinancialGoalsController(db *mongo.Database) *controllers.GetFinancialGoalsController {
	findRepo := financial_goal_repository.NewFindFinancialGoalsRepository(db)
	return controllers.NewGetFinancialGoalsController(findRepo)
}

// MakeUpdateFinancialGoalController creates the controller for updating financial goals
func MakeUpdateFinancialGoalController(db *mongo.Database) *controllers.UpdateFinancialGoalController {
	updateRepo := financial_goal_repository.NewUpdateFinancialGoalRepository(db)
	findByIdRepo := financial_goal_repository.NewFindFinancialGoalByIdRepository(db)
	return controllers.NewUpdateFinancialGoalController(updateRepo, findByIdRepo)
}

// MakeContributeFinancialGoalController creates the controller for goal contributions
func MakeContributeFinancialGoalController(db *mongo.Database) *controllers.ContributeFinancialGoalController {
	findByIdRepo := financial_goal_repository.NewFindFinancialGoalByIdRepository(db)
	contributeRepo := financial_goal_repository.NewContributeToFinancialGoalRepository(db)
	return controllers.NewContributeFinancialGoalController(findByIdRepo, contributeRepo)
}

// MakeDeleteFinancialGoalController creates the controller for deleting financial goals
func MakeDeleteFinancialGoalController(db *mongo.Database) *controllers.DeleteFinancialGoalController {
	deleteRepo := financial_goal_repository.NewDeleteFinancialGoalRepository(db)
	return controllers.NewDeleteFinancialGoalController(deleteRepo)
}
