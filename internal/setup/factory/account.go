package factory

import (
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/account_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/account"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeCreateAccountController creates the controller for creating accounts
func MakeCreateAccountController(db *mongo.Database) *controllers.CreateAccountController {
	createRepo := account_repository.NewCreateAccountRepository(db)
	findByNameRepo := account_repository.NewFindAccountByNameRepository(db)
	return controllers.NewCreateAccountController(createRepo, findByNameRepo)
}

// MakeGetAccountsController creates the controller for retrieving accounts
func MakeGetAccountsController(db *mongo.Database) *controllers.GetAccountsController {
	findRepo := account_repository.NewFindAccountsRepository(db)
	return controllers.NewGetAccountsController(findRepo)
}

// MakeGetAccountByIdController creates the controller for retrieving an account by ID
func MakeGetAccountByIdController(db *mongo.Database) *controllers.GetAccountByIdController {
	findByIdRepo := account_repository.NewFindAccountByIdRepository(db)
	return controllers.NewGetAccountByIdController(findByIdRepo)
}

// MakeUpdateAccountController creates the controller for updating accounts
func MakeUpdateAccountController(db *mongo.Database) *controllers.UpdateAccountController {
	updateRepo := account_repository.NewUpdateAccountRepository(db)
	findByIdRepo := account_repository.NewFindAccountByIdRepository(db)
	findByNameRepo := account_repository.NewFindAccountByNameRepository(db)
	return controllers.NewUpdateAccountController(updateRepo, findByIdRepo, findByNameRepo)
}

// MakeDeleteAccountController creates the controller for deleting accounts
func MakeDeleteAccountController(db *mongo.Database) *controllers.DeleteAccountController {
	deleteRepo := account_repository.NewDeleteAccountRepository(db)
	return controllers.NewDeleteAccountController(deleteRepo)
}

// MakeTransferenceController creates the controller for transfers between accounts
func MakeTransferenceController(db *mongo.Database) *controllers.TransferenceController {
	findByIdRepo := account_repository.NewFindAccountByIdRepository(db)
	transferRepo := account_repository.NewTransferBetweenAccountsRepository(db)
	return controllers.NewTransferenceController(findByIdRepo, transferRepo)
}
