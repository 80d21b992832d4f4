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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateAccountController handles updating accounts
type UpdateAccountController struct {
	Validate                    *validator.Validate
	UpdateAccountRepository     usecase.UpdateAccountRepository
	FindAccountByIdRepository   usecase.FindAccountByIdRepository
	FindAccountByNameRepository usecase.FindAccountByNameRepository
}

// NewUpdateAccountController initializes a new UpdateAccountController
func NewUpdateAccountController(
	updateRepo usecase.UpdateAccountRepository,
	findByIdRepo usecase.FindAccountByIdRepository,
	findByNameRepo usecase.FindAccountByNameRepository,
) *UpdateAccountController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateAccountController{
		Validate:                    validate,
		UpdateAccountRepository:     updateRepo,
		FindAccountByIdRepository:   findByIdRepo,
		FindAccountByNameRepository: findByNameRepo,
	}
}

type UpdateAccountControllerBody struct {
	Name    string  `json:"name" validate:"required,min=2,max=255"`
	Bank    string  `json:"bank" validate:"omitempty,max=100"`
	Icon    string  `json:"icon" validate:"omitempty,max=50"`
	Balance float64 `json:"balance"`
}

// Handle processes the HTTP request to update an account
func (c *UpdateAccountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("accountId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid account ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindAccountByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding account"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "account not found"}, http.StatusNotFound)
	}

	var body UpdateAccountControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	if existing.Name != body.Name {
		other, err := c.FindAccountByNameRepository.FindByName(body.Name, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when checking account name"}, http.StatusInternalServerError)
		}
		if other != nil && other.Id != id {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an account with this name already exists"}, http.StatusConflict)
		}
	}

	updated, err := c.UpdateAccountRepository.Update(id, &models.Account{
		Id:        existing.Id,
		UserId:    userId,
		Name:      body.Name,
		Bank:      body.Bank,
		Icon:      models.ResolveIcon(body.Icon),
		Balance:   body.Balance,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating account"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
