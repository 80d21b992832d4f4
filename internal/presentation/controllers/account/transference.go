package account

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransferenceController moves an amount between two accounts of the same user
type TransferenceController struct {
	Validate                          *validator.Validate
	FindAccountByIdRepository         usecase.FindAccountByIdRepository
	TransferBetweenAccountsRepository usecase.TransferBetweenAccountsRepository
}

// NewTransferenceController initializes a TransferenceController
func NewTransferenceController(
	findByIdRepo usecase.FindAccountByIdRepository,
	transferRepo usecase.TransferBetweenAccountsRepository,
) *TransferenceController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &TransferenceController{
		Validate:                          validate,
		FindAccountByIdRepository:         findByIdRepo,
		TransferBetweenAccountsRepository: transferRepo,
	}
}

type TransferenceControllerBody struct {
	FromAccountId string  `json:"fromAccountId" validate:"required"`
	ToAccountId   string  `json:"toAccountId" validate:"required,nefield=FromAccountId"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

// Handle processes the HTTP request to transfer money between accounts
func (c *TransferenceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body TransferenceControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	fromId, err := primitive.ObjectIDFromHex(body.FromAccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid source account ID format",
		}, http.StatusBadRequest)
	}
	toId, err := primitive.ObjectIDFromHex(body.ToAccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid destination account ID format",
		}, http.StatusBadRequest)
	}

	for _, accountId := range []primitive.ObjectID{fromId, toId} {
		account, err := c.FindAccountByIdRepository.Find(accountId, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when finding account",
			}, http.StatusInternalServerError)
		}
		if account == nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "account not found",
			}, http.StatusNotFound)
		}
	}

	if err := c.TransferBetweenAccountsRepository.Transfer(fromId, toId, userId, body.Amount); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when transferring between accounts",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
