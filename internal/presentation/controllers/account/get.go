package account

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetAccountsController handles retrieving all accounts
type GetAccountsController struct {
	FindAccountsRepository usecase.FindAccountsRepository
}

// NewGetAccountsController creates a new instance of GetAccountsController
func NewGetAccountsController(repo usecase.FindAccountsRepository) *GetAccountsController {
	return &GetAccountsController{FindAccountsRepository: repo}
}

// Handle processes the HTTP request to retrieve accounts
func (c *GetAccountsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	accounts, err := c.FindAccountsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving accounts",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(accounts, http.StatusOK)
}
