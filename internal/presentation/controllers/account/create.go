package account

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// CreateAccountController handles creating new accounts
type CreateAccountController struct {
	Validate                    *validator.Validate
	CreateAccountRepository     usecase.CreateAccountRepository
	FindAccountByNameRepository usecase.FindAccountByNameRepository
}

// NewCreateAccountController initializes a CreateAccountController
func NewCreateAccountController(
	createAccountRepository usecase.CreateAccountRepository,
	findAccountByNameRepository usecase.FindAccountByNameRepository,
) *CreateAccountController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateAccountController{
		Validate:                    validate,
		CreateAccountRepository:     createAccountRepository,
		FindAccountByNameRepository: findAccountByNameRepository,
	}
}

// CreateAccountControllerBody defines the expected body for creating an account
type CreateAccountControllerBody struct {
	Name    string  `json:"name" validate:"required,min=2,max=255"`
	Bank    string  `json:"bank" validate:"omitempty,max=100"`
	Icon    string  `json:"icon" validate:"omitempty,max=50"`
	Balance float64 `json:"balance"`
}

// Handle processes the HTTP request for creating an account
func (c *CreateAccountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateAccountControllerBody
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

	existing, err := c.FindAccountByNameRepository.FindByName(body.Name, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when checking for account name",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an account with this name already exists",
		}, http.StatusConflict)
	}

	now := time.Now()
	account, err := c.CreateAccountRepository.Create(&models.Account{
		UserId:    userId,
		Name:      body.Name,
		Bank:      body.Bank,
		Icon:      models.ResolveIcon(body.Icon),
		Balance:   body.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating account",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(account, http.StatusCreated)
}
