package transaction

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// GetTransactionsController handles retrieving transactions with the global filters
type GetTransactionsController struct {
	FindTransactionsRepository usecase.FindTransactionsRepository
	Validate                   *validator.Validate
}

// NewGetTransactionsController creates a new instance of GetTransactionsController
func NewGetTransactionsController(repo usecase.FindTransactionsRepository) *GetTransactionsController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &GetTransactionsController{FindTransactionsRepository: repo, Validate: validate}
}

// Handle processes the HTTP request to retrieve transactions
func (c *GetTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	return helpers.CreateResponse(transactions, http.StatusOK)
}
