package financial_goal

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetFinancialGoalsController handles retrieving all financial goals
type GetFinancialGoalsController struct {
	FindFinancialGoalsRepository usecase.FindFinancialGoalsRepository
}

// NewGetFinancialGoalsController creates a new instance of GetFinancialGoalsController
func NewGetFinancialGoalsController(repo usecase.FindFinancialGoalsRepository) *GetFinancialGoalsController {
	return &GetFinancialGoalsController{FindFinancialGoalsRepository: repo}
}

// Handle processes the HTTP request to retrieve financial goals
func (c *GetFinancialGoalsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	goals, err := c.FindFinancialGoalsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving financial goals",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(goals, http.StatusOK)
}
