package dashboard

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	infraHelpers "github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// GetSummaryController aggregates the month's numbers for the dashboard
type GetSummaryController struct {
	Validate                   *validator.Validate
	FindTransactionsRepository usecase.FindTransactionsRepository
	FindAccountsRepository     usecase.FindAccountsRepository
}

// NewGetSummaryController creates a new instance of GetSummaryController
func NewGetSummaryController(
	findTransactionsRepo usecase.FindTransactionsRepository,
	findAccountsRepo usecase.FindAccountsRepository,
) *GetSummaryController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &GetSummaryController{
		Validate:                   validate,
		FindTransactionsRepository: findTransactionsRepo,
		FindAccountsRepository:     findAccountsRepo,
	}
}

// GetSummaryResponse is the dashboard payload
type GetSummaryResponse struct {
	Income           float64            `json:"income"`
	Expense          float64            `json:"expense"`
	Balance          float64            `json:"balance"`
	TotalBalance     float64            `json:"totalBalance"`
	CategorySpending map[string]float64 `json:"categorySpending"`
}

// Handle processes the HTTP request to compute the dashboard summary
func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	globalFilters, errResponse := helpers.GetGlobalFilterByQueries(&r.UrlParams, userId, c.Validate)
	if errResponse != nil {
		return errResponse
	}

	transactions, err := c.FindTransactionsRepository.Find(globalFilters)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transactions",
		}, http.StatusInternalServerError)
	}

	accounts, err := c.FindAccountsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving accounts",
		}, http.StatusInternalServerError)
	}

	summary := infraHelpers.CalculateMonthlySummary(transactions)

	var totalBalance float64
	for _, account := range accounts {
		totalBalance += account.Balance
	}

	return helpers.CreateResponse(&GetSummaryResponse{
		Income:           summary.Income,
		Expense:          summary.Expense,
		Balance:          summary.Balance,
		TotalBalance:     totalBalance,
		CategorySpending: infraHelpers.CalculateCategorySpending(transactions),
	}, http.StatusOK)
}
