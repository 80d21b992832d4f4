package credit_card

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// CreateCreditCardController handles creating new credit cards
type CreateCreditCardController struct {
	Validate                       *validator.Validate
	CreateCreditCardRepository     usecase.CreateCreditCardRepository
	FindCreditCardByNameRepository usecase.FindCreditCardByNameRepository
}

// NewCreateCreditCardController initializes a CreateCreditCardController
func NewCreateCreditCardController(
	createCreditCardRepository usecase.CreateCreditCardRepository,
	findCreditCardByNameRepository usecase.FindCreditCardByNameRepository,
) *CreateCreditCardController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateCreditCardController{
		Validate:                       validate,
		CreateCreditCardRepository:     createCreditCardRepository,
		FindCreditCardByNameRepository: findCreditCardByNameRepository,
	}
}

// CreateCreditCardControllerBody defines the expected body for creating a credit card
type CreateCreditCardControllerBody struct {
	Name     string  `json:"name" validate:"required,min=2,max=255"`
	Last4    string  `json:"last4" validate:"omitempty,len=4,numeric"`
	Limit    float64 `json:"limit" validate:"min=0"`
	CloseDay int     `json:"closeDay" validate:"required,min=1,max=31"`
	DueDay   int     `json:"dueDay" validate:"required,min=1,max=31"`
	Brand    string  `json:"brand" validate:"omitempty,oneof=MASTERCARD VISA ELO HIPERCARD AMEX OTHER"`
}

// Handle processes the HTTP request for creating a credit card
func (c *CreateCreditCardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateCreditCardControllerBody
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

	existing, err := c.FindCreditCardByNameRepository.FindByName(body.Name, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when checking for credit card name",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a credit card with this name already exists",
		}, http.StatusConflict)
	}

	creditCard, err := c.CreateCreditCardRepository.Create(&models.CreditCard{
		UserId:   userId,
		Name:     body.Name,
		Last4:    body.Last4,
		Limit:    body.Limit,
		CloseDay: body.CloseDay,
		DueDay:   body.DueDay,
		Brand:    body.Brand,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating credit card",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(creditCard, http.StatusCreated)
}
