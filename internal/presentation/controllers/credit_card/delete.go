package credit_card

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteCreditCardController handles deleting credit cards
type DeleteCreditCardController struct {
	DeleteCreditCardRepository usecase.DeleteCreditCardRepository
}

// NewDeleteCreditCardController initializes a new DeleteCreditCardController
func NewDeleteCreditCardController(deleteRepo usecase.DeleteCreditCardRepository) *DeleteCreditCardController {
	return &DeleteCreditCardController{DeleteCreditCardRepository: deleteRepo}
}

// Handle processes the HTTP request to delete a credit card
func (c *DeleteCreditCardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("creditCardId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid credit card ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteCreditCardRepository.Delete(id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting credit card",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
