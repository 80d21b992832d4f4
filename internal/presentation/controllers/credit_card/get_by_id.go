package credit_card

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCreditCardByIdController handles retrieving a single credit card
type GetCreditCardByIdController struct {
	FindCreditCardByIdRepository usecase.FindCreditCardByIdRepository
}

// NewGetCreditCardByIdController creates a new instance of GetCreditCardByIdController
func NewGetCreditCardByIdController(repo usecase.FindCreditCardByIdRepository) *GetCreditCardByIdController {
	return &GetCreditCardByIdController{FindCreditCardByIdRepository: repo}
}

// Handle processes the HTTP request to retrieve a credit card by its id
func (c *GetCreditCardByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	card, err := c.FindCreditCardByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving credit card",
		}, http.StatusInternalServerError)
	}
	if card == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "credit card not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(card, http.StatusOK)
}
