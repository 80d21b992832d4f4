package budget

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteBudgetController handles deleting budgets
type DeleteBudgetController struct {
	DeleteBudgetRepository usecase.DeleteBudgetRepository
}

// NewDeleteBudgetController initializes a new DeleteBudgetController
func NewDeleteBudgetController(deleteRepo usecase.DeleteBudgetRepository) *DeleteBudgetController {
	return &DeleteBudgetController{DeleteBudgetRepository: deleteRepo}
}

// Handle processes the HTTP request to delete a budget
func (c *DeleteBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("budgetId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid budget ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteBudgetRepository.Delete(id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting budget",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
