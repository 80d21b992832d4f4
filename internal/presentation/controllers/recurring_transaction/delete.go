package recurring_transaction

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteRecurringTransactionController handles deleting recurring rules
type DeleteRecurringTransactionController struct {
	DeleteRecurringTransactionRepository usecase.DeleteRecurringTransactionRepository
}

// NewDeleteRecurringTransactionController initializes a new DeleteRecurringTransactionController
func NewDeleteRecurringTransactionController(deleteRepo usecase.DeleteRecurringTransactionRepository) *DeleteRecurringTransactionController {
	return &DeleteRecurringTransactionController{DeleteRecurringTransactionRepository: deleteRepo}
}

// Handle processes the HTTP request to delete a recurring rule. Transactions
// already materialized from the rule are kept.
func (c *DeleteRecurringTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("recurringTransactionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recurring transaction ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteRecurringTransactionRepository.Delete(id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting recurring transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
