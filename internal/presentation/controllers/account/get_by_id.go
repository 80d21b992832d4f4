package account

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAccountByIdController handles retrieving a single account
type GetAccountByIdController struct {
	FindAccountByIdRepository usecase.FindAccountByIdRepository
}

// NewGetAccountByIdController creates a new instance of GetAccountByIdController
func NewGetAccountByIdController(repo usecase.FindAccountByIdRepository) *GetAccountByIdController {
	return &GetAccountByIdController{FindAccountByIdRepository: repo}
}

// Handle processes the HTTP request to retrieve an account by its id
func (c *GetAccountByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("accountId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid account ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	account, err := c.FindAccountByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving account",
		}, http.StatusInternalServerError)
	}
	if account == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(account, http.StatusOK)
}
