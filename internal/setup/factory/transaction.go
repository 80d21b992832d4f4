package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/account_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/credit_card_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/redis_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/transaction"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateTransactionController creates the controller for creating transactions
func MakeCreateTransactionController(db *mongo.Database) *controllers.CreateTransactionController {
	createRepo := transaction_repository.NewCreateTransactionRepository(db)
	createWithBalanceRepo := transaction_repository.NewCreateTransactionWithBalanceRepository(db)
	findAccountRepo := account_repository.NewFindAccountByIdRepository(db)
	findCategoryRepo := category_repository.NewFindCategoryByIdRepository(db)
	findCreditCardRepo := credit_card_repository.NewFindCreditCardByIdRepository(db)
	return controllers.NewCreateTransactionController(createRepo, createWithBalanceRepo, findAccountRepo, findCategoryRepo, findCreditCardRepo)
}

// MakeGetTransactionsController creates the controller for retrieving transactions
func MakeGetTransactionsController(db *mongo.Database) *controllers.GetTransactionsController {
	findRepo := transaction_repository.NewFindTransactionsRepository(db)
	return controllers.NewGetTransactionsController(findRepo)
}

// MakeGetTransactionByIdController creates the controller for retrieving a transaction by ID
func MakeGetTransactionByIdController(db *mongo.Database) *controllers.GetTransactionByIdController {
	findByIdRepo := transaction_repository.NewFindTransactionByIdRepository(db)
	return controllers.NewGetTransactionByIdController(findByIdRepo)
}

// MakeUpdateTransactionController creates the controller for updating transactions
func MakeUpdateTransactionController(db *mongo.Database) *controllers.UpdateTransactionController {
	updateRepo := transaction_repository.NewUpdateTransactionRepository(db)
	findByIdRepo := transaction_repository.NewFindTransactionByIdRepository(db)
	return controllers.NewUpdateTransactionController(updateRepo, findByIdRepo)
}

// MakeDeleteTransactionsController creates the controller for deleting transactions
func MakeDeleteTransactionsController(db *mongo.Database) *controllers.DeleteTransactionsController {
	deleteRepo := transaction_repository.NewDeleteTransactionsRepository(db)
	return controllers.NewDeleteTransactionsController(deleteRepo)
}

// MakeImportTransactionsController creates the controller for importing statement files
func MakeImportTransactionsController(db *mongo.Database) *controllers.ImportTransactionsController {
	createManyRepo := transaction_repository.NewCreateManyTransactionsRepository(db)
	findCategoryRepo := category_repository.NewFindCategoryByNameRepository(db)
	findFallbackCategoryRepo := category_repository.NewFindFallbackCategoryRepository(db)
	findAccountRepo := account_repository.NewFindAccountByNameRepository(db)
	findFirstAccountRepo := account_repository.NewFindFirstAccountRepository(db)
	findCreditCardRepo := credit_card_repository.NewFindCreditCardByNameRepository(db)
	return controllers.NewImportTransactionsController(createManyRepo, findCategoryRepo, findFallbackCategoryRepo, findAccountRepo, findFirstAccountRepo, findCreditCardRepo)
}

// MakeExportTransactionsController creates the controller for exporting transactions
func MakeExportTransactionsController(db *mongo.Database, redisClient *redis.Client) *controllers.ExportTransactionsController {
	findTransactionsRepo := transaction_repository.NewFindTransactionsRepository(db)
	findCategoriesRepo := category_repository.NewFindCategoriesRepository(db)
	findAccountsRepo := account_repository.NewFindAccountsRepository(db)
	findCreditCardsRepo := credit_card_repository.NewFindCreditCardsRepository(db)
	exportCacheRepo := redis_repository.NewExportCacheRepository(redisClient)
	return controllers.NewExportTransactionsController(findTransactionsRepo, findCategoriesRepo, findAccountsRepo, findCreditCardsRepo, exportCacheRepo)
}
