package transaction

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTransactionByIdController handles retrieving a single transaction
type GetTransactionByIdController struct {
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
}

// NewGetTransactionByIdController creates a new instance of GetTransactionByIdController
func NewGetTransactionByIdController(repo usecase.FindTransactionByIdRepository) *GetTransactionByIdController {
	return &GetTransactionByIdController{FindTransactionByIdRepository: repo}
}

// Handle processes the HTTP request to retrieve a transaction by its id
func (c *GetTransactionByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("transactionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid transaction ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	transaction, err := c.FindTransactionByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving transaction",
		}, http.StatusInternalServerError)
	}
	if transaction == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "transaction not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(transaction, http.StatusOK)
}
