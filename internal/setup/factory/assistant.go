package factory

import (
	"github.com/go-playground/validator/v10"

	"github.com/controlenamao/finance-backend/internal/infra/ai"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/account_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/budget_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/category_repository"
	"github.com/controlenamao/finance-backend/internal/infra/db/mongodb/repositories/transaction_repository"
	controllers "github.com/controlenamao/finance-backend/internal/presentation/controllers/assistant"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeChatController creates the assistant chat controller with its tool set
func MakeChatController(db *mongo.Database, aiClient *ai.Client) *controllers.ChatController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	addTransaction := &ai.AddTransactionTool{
		Validator:                validate,
		FindCategoryByName:       category_repository.NewFindCategoryByNameRepository(db),
		FindAccountByName:        account_repository.NewFindAccountByNameRepository(db),
		FindFirstAccount:         account_repository.NewFindFirstAccountRepository(db),
		CreateTransactionBalance: transaction_repository.NewCreateTransactionWithBalanceRepository(db),
	}

	updateBudget := &ai.UpdateBudgetTool{
		Validator:              validate,
		FindCategoryByName:     category_repository.NewFindCategoryByNameRepository(db),
		FindBudgetByCategoryId: budget_repository.NewFindBudgetByCategoryIdRepository(db),
		UpdateBudgetAmount:     budget_repository.NewUpdateBudgetAmountRepository(db),
	}

	agent := ai.NewAgent(aiClient, addTransaction, updateBudget)

	return controllers.NewChatController(agent)
}

// MakeSuggestCategoryController creates the controller for category suggestions
func MakeSuggestCategoryController(db *mongo.Database, aiClient *ai.Client) *controllers.SuggestCategoryController {
	findCategoriesRepo := category_repository.NewFindCategoriesRepository(db)
	return controllers.NewSuggestCategoryController(aiClient, findCategoriesRepo)
}

// MakeForecastBudgetController creates the controller for budget forecasts
func MakeForecastBudgetController(db *mongo.Database, aiClient *ai.Client) *controllers.ForecastBudgetController {
	findCategoriesRepo := category_repository.NewFindCategoriesRepository(db)
	findTransactionsRepo := transaction_repository.NewFindTransactionsRepository(db)
	return controllers.NewForecastBudgetController(aiClient, findCategoriesRepo, findTransactionsRepo)
}
