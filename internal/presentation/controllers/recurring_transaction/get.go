package recurring_transaction

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetRecurringTransactionsController handles retrieving all recurring rules
type GetRecurringTransactionsController struct {
	FindRecurringTransactionsRepository usecase.FindRecurringTransactionsRepository
}

// NewGetRecurringTransactionsController creates a new instance of GetRecurringTransactionsController
func NewGetRecurringTransactionsController(repo usecase.FindRecurringTransactionsRepository) *GetRecurringTransactionsController {
	return &GetRecurringTransactionsController{FindRecurringTransactionsRepository: repo}
}

// Handle processes the HTTP request to retrieve recurring rules
func (c *GetRecurringTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	rules, err := c.FindRecurringTransactionsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving recurring transactions",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(rules, http.StatusOK)
}
