package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/account_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/dashboard"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeGetSummaryController creates the controller for the monthly dashboard summary
func MakeGetSummaryController(db *mongo.Database) *controllers.GetSummaryController {
	findTransactionsRepo := transaction_repository.NewFindTransactionsRepository(db)
	findAccountsRepo := account_repository.NewFindAccountsRepository(db)
	return controllers.NewGetSummaryController(findTransactionsRepo, findAccountsRepo)
}
