package recurring_transaction

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

// UpdateRecurringTransactionController handles updating recurring rules
type UpdateRecurringTransactionController struct {
	Validate                               *validator.Validate
	UpdateRecurringTransactionRepository   usecase.UpdateRecurringTransactionRepository
	FindRecurringTransactionByIdRepository usecase.FindRecurringTransactionByIdRepository
}

// NewUpdateRecurringTransactionController initializes a new UpdateRecurringTransactionController
func NewUpdateRecurringTransactionController(
	updateRepo usecase.UpdateRecurringTransactionRepository,
	findByIdRepo usecase.FindRecurringTransactionByIdRepository,
) *UpdateRecurringTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateRecurringTransactionController{
		Validate:                               validate,
		UpdateRecurringTransactionRepository:   updateRepo,
		FindRecurringTransactionByIdRepository: findByIdRepo,
	}
}

type UpdateRecurringTransactionControllerBody struct {
	Description string  `json:"description" validate:"required,min=2,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Frequency   string  `json:"frequency" validate:"required,oneof=WEEKLY MONTHLY YEARLY"`
	DayOfMonth  int     `json:"dayOfMonth" validate:"omitempty,min=1,max=31"`
	Weekday     int     `json:"weekday" validate:"min=0,max=6"`
	Active      bool    `json:"active"`
	EndDate     string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// Handle processes the HTTP request to update a recurring rule
func (c *UpdateRecurringTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("recurringTransactionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid recurring transaction ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindRecurringTransactionByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding recurring transaction"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "recurring transaction not found"}, http.StatusNotFound)
	}

	var body UpdateRecurringTransactionControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	endDate := existing.EndDate
	if body.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", body.EndDate)
		if err != nil || parsed.Before(existing.StartDate) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "end date must be after start date"}, http.StatusBadRequest)
		}
		endDate = &parsed
	}

	updated, err := c.UpdateRecurringTransactionRepository.Update(id, &models.RecurringTransaction{
		Id:          existing.Id,
		UserId:      userId,
		Description: body.Description,
		Amount:      body.Amount,
		Type:        body.Type,
		CategoryId:  existing.CategoryId,
		AccountId:   existing.AccountId,
		CreditCard:  existing.CreditCard,
		Frequency:   body.Frequency,
		DayOfMonth:  body.DayOfMonth,
		Weekday:     body.Weekday,
		StartDate:   existing.StartDate,
		EndDate:     endDate,
		Active:      body.Active,
		LastRun:     existing.LastRun,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating recurring transaction"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
