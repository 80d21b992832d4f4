package credit_card

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetCreditCardsController handles retrieving all credit cards
type GetCreditCardsController struct {
	FindCreditCardsRepository usecase.FindCreditCardsRepository
}

// NewGetCreditCardsController creates a new instance of GetCreditCardsController
func NewGetCreditCardsController(repo usecase.FindCreditCardsRepository) *GetCreditCardsController {
	return &GetCreditCardsController{FindCreditCardsRepository: repo}
}

// Handle processes the HTTP request to retrieve credit cards
func (c *GetCreditCardsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	cards, err := c.FindCreditCardsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving credit cards",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(cards, http.StatusOK)
}
