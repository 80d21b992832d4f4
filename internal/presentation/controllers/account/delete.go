package account

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteAccountController handles deleting accounts
type DeleteAccountController struct {
	DeleteAccountRepository usecase.DeleteAccountRepository
}

// NewDeleteAccountController initializes a new DeleteAccountController
func NewDeleteAccountController(deleteRepo usecase.DeleteAccountRepository) *DeleteAccountController {
	return &DeleteAccountController{DeleteAccountRepository: deleteRepo}
}

// Handle processes the HTTP request to delete an account
func (c *DeleteAccountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteAccountRepository.Delete(id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting account",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
