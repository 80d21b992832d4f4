package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/budget_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/budget"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateBudgetController creates the controller for creating budgets
func MakeCreateBudgetController(db *mongo.Database) *controllers.CreateBudgetController {
	createRepo := budget_repository.NewCreateBudgetRepository(db)
	findCategoryRepo := category_repository.NewFindCategoryByIdRepository(db)
	findByCategoryRepo := budget_repository.NewFindBudgetByCategoryIdRepository(db)
	return controllers.NewCreateBudgetController(createRepo, findCategoryRepo, findByCategoryRepo)
}

// MakeGetBudgetsController creates the controller for retrieving budgets with spending
func MakeGetBudgetsController(db *mongo.Database) *controllers.GetBudgetsController {
	findBudgetsRepo := budget_repository.NewFindBudgetsRepository(db)
	findTransactionsRepo := transaction_repository.NewFindTransactionsRepository(db)
	return controllers.NewGetBudgetsController(findBudgetsRepo, findTransactionsRepo)
}

// MakeUpdateBudgetController creates the controller for updating budget amounts
func MakeUpdateBudgetController(db *mongo.Database) *controllers.UpdateBudgetController {
	updateRepo := budget_repository.NewUpdateBudgetAmountRepository(db)
	findBudgetsRepo := budget_repository.NewFindBudgetsRepository(db)
	return controllers.NewUpdateBudgetController(updateRepo, findBudgetsRepo)
}

// MakeDeleteBudgetController creates the controller for deleting budgets
func MakeDeleteBudgetController(db *mongo.Database) *controllers.DeleteBudgetController {
	deleteRepo := budget_repository.NewDeleteBudgetRepository(db)
	return controllers.NewDeleteBudgetController(deleteRepo)
}
