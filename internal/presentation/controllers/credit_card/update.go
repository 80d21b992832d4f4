package credit_card

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateCreditCardController handles updating credit cards
type UpdateCreditCardController struct {
	Validate                       *validator.Validate
	UpdateCreditCardRepository     usecase.UpdateCreditCardRepository
	FindCreditCardByIdRepository   usecase.FindCreditCardByIdRepository
	FindCreditCardByNameRepository usecase.FindCreditCardByNameRepository
}

// NewUpdateCreditCardController initializes a new UpdateCreditCardController
func NewUpdateCreditCardController(
	updateRepo usecase.UpdateCreditCardRepository,
	findByIdRepo usecase.FindCreditCardByIdRepository,
	findByNameRepo usecase.FindCreditCardByNameRepository,
) *UpdateCreditCardController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateCreditCardController{
		Validate:                       validate,
		UpdateCreditCardRepository:     updateRepo,
		FindCreditCardByIdRepository:   findByIdRepo,
		FindCreditCardByNameRepository: findByNameRepo,
	}
}

type UpdateCreditCardControllerBody struct {
	Name     string  `json:"name" validate:"required,min=2,max=255"`
	Last4    string  `json:"last4" validate:"omitempty,len=4,numeric"`
	Limit    float64 `json:"limit" validate:"min=0"`
	CloseDay int     `json:"closeDay" validate:"required,min=1,max=31"`
	DueDay   int     `json:"dueDay" validate:"required,min=1,max=31"`
	Brand    string  `json:"brand" validate:"omitempty,oneof=MASTERCARD VISA ELO HIPERCARD AMEX OTHER"`
}

// Handle processes the HTTP request to update a credit card
func (c *UpdateCreditCardController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("creditCardId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid credit card ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindCreditCardByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding credit card"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "credit card not found"}, http.StatusNotFound)
	}

	var body UpdateCreditCardControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	// Check for name uniqueness if changed
	if existing.Name != body.Name {
		other, err := c.FindCreditCardByNameRepository.FindByName(body.Name, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when checking credit card name"}, http.StatusInternalServerError)
		}
		if other != nil && other.Id != id {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "a credit card with this name already exists"}, http.StatusConflict)
		}
	}

	updated, err := c.UpdateCreditCardRepository.Update(id, &models.CreditCard{
		Id:       existing.Id,
		UserId:   userId,
		Name:     body.Name,
		Last4:    body.Last4,
		Limit:    body.Limit,
		CloseDay: body.CloseDay,
		DueDay:   body.DueDay,
		Brand:    body.Brand,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating credit card"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
