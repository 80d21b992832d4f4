package financial_goal

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteFinancialGoalController handles deleting financial goals
type DeleteFinancialGoalController struct {
	DeleteFinancialGoalRepository usecase.DeleteFinancialGoalRepository
}

// NewDeleteFinancialGoalController initializes a new DeleteFinancialGoalController
func NewDeleteFinancialGoalController(deleteRepo usecase.DeleteFinancialGoalRepository) *DeleteFinancialGoalController {
	return &DeleteFinancialGoalController{DeleteFinancialGoalRepository: deleteRepo}
}

// Handle processes the HTTP request to delete a financial goal
func (c *DeleteFinancialGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("goalId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid goal ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteFinancialGoalRepository.Delete(id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting financial goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
