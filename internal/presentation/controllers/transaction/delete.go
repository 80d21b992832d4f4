package transaction

import (
	"net/http"
	"strings"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteTransactionsController handles deleting transactions
type DeleteTransactionsController struct {
	DeleteTransactionsRepository usecase.DeleteTransactionsRepository
}

// NewDeleteTransactionsController initializes a new DeleteTransactionsController
func NewDeleteTransactionsController(deleteRepo usecase.DeleteTransactionsRepository) *DeleteTransactionsController {
	return &DeleteTransactionsController{DeleteTransactionsRepository: deleteRepo}
}

// Handle processes the HTTP request to delete transactions. Deleting an
// installment original removes the whole purchase, which drops all of its
// projections with it.
func (c *DeleteTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	ids := r.UrlParams.Get("ids")
	if ids == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "missing ids query parameter",
		}, http.StatusBadRequest)
	}

	var idsObjectID []primitive.ObjectID
	for _, id := range strings.Split(ids, ",") {
		if strings.Contains(id, "-installment-") {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "projected installments cannot be deleted individually; delete the original purchase instead",
			}, http.StatusUnprocessableEntity)
		}

		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid transaction ID format",
			}, http.StatusBadRequest)
		}
		idsObjectID = append(idsObjectID, objectID)
	}

	if err := c.DeleteTransactionsRepository.Delete(idsObjectID, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting transactions",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
