package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/account_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/recurring_transaction_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/recurring_transaction"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateRecurringTransactionController creates the controller for creating rules
func MakeCreateRecurringTransactionController(db *mongo.Database) *controllers.CreateRecurringTransactionController {
	createRepo := recurring_transaction_repository.NewCreateRecurringTransactionRepository(db)
	findCategoryRepo := category_repository.NewFindCategoryByIdRepository(db)
	findAccountRepo := account_repository.NewFindAccountByIdRepository(db)
	return controllers.NewCreateRecurringTransactionController(createRepo, findCategoryRepo, findAccountRepo)
}

// MakeGetRecurringTransactionsController creates the controller for retrieving rules
func MakeGetRecurringTransactionsController(db *mongo.Database) *controllers.GetRecurringTransactionsController {
	findRepo := recurring_transaction_repository.NewFindRecurringTransactionsRepository(db)
	return controllers.NewGetRecurringTransactionsController(findRepo)
}

// MakeMaterializeRecurringTransactionsController creates the controller that writes
// the pending occurrences of every rule for a month
func MakeMaterializeRecurringTransactionsController(db *mongo.Database) *controllers.MaterializeRecurringTransactionsController {
	findRepo := recurring_transaction_repository.NewFindRecurringTransactionsRepository(db)
	createManyRepo := transaction_repository.NewCreateManyTransactionsRepository(db)
	markRunRepo := recurring_transaction_repository.NewMarkRecurringTransactionRunRepository(db)
	return controllers.NewMaterializeRecurringTransactionsController(findRepo, createManyRepo, markRunRepo)
}

// MakeUpdateRecurringTransactionController creates the controller for updating rules
func MakeUpdateRecurringTransactionController(db *mongo.Database) *controllers.UpdateRecurringTransactionController {
	updateRepo := recurring_transaction_repository.NewUpdateRecurringTransactionRepository(db)
	findByIdRepo := recurring_transaction_repository.NewFindRecurringTransactionByIdRepository(db)
	return controllers.NewUpdateRecurringTransactionController(updateRepo, findByIdRepo)
}

// MakeDeleteRecurringTransactionController creates the controller for deleting rules
func MakeDeleteRecurringTransactionController(db *mongo.Database) *controllers.DeleteRecurringTransactionController {
	deleteRepo := recurring_transaction_repository.NewDeleteRecurringTransactionRepository(db)
	return controllers.NewDeleteRecurringTransactionController(deleteRepo)
}
