package budget

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	infraHelpers "github.com/controlenamao/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// GetBudgetsController handles retrieving budgets with the month's spending
// already filled in
type GetBudgetsController struct {
	Validate                   *validator.Validate
	FindBudgetsRepository      usecase.FindBudgetsRepository
	FindTransactionsRepository usecase.FindTransactionsRepository
}

// NewGetBudgetsController creates a new instance of GetBudgetsController
func NewGetBudgetsController(
	findBudgetsRepo usecase.FindBudgetsRepository,
	findTransactionsRepo usecase.FindTransactionsRepository,
) *GetBudgetsController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &GetBudgetsController{
		Validate:                   validate,
		FindBudgetsRepository:      findBudgetsRepo,
		FindTransactionsRepository: findTransactionsRepo,
	}
}

// Handle processes the HTTP request to retrieve budgets
func (c *GetBudgetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	budgets, err := c.FindBudgetsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving budgets",
		}, http.StatusInternalServerError)
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

	spending := infraHelpers.CalculateCategorySpending(transactions)
	for i := range budgets {
		budgets[i].Spent = spending[budgets[i].CategoryId.Hex()]
	}

	return helpers.CreateResponse(budgets, http.StatusOK)
}
