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

// CreateRecurringTransactionController handles creating recurring rules
type CreateRecurringTransactionController struct {
	Validate                             *validator.Validate
	CreateRecurringTransactionRepository usecase.CreateRecurringTransactionRepository
	FindCategoryByIdRepository           usecase.FindCategoryByIdRepository
	FindAccountByIdRepository            usecase.FindAccountByIdRepository
}

// NewCreateRecurringTransactionController initializes a CreateRecurringTransactionController
func NewCreateRecurringTransactionController(
	createRepo usecase.CreateRecurringTransactionRepository,
	findCategoryRepo usecase.FindCategoryByIdRepository,
	findAccountRepo usecase.FindAccountByIdRepository,
) *CreateRecurringTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateRecurringTransactionController{
		Validate:                             validate,
		CreateRecurringTransactionRepository: createRepo,
		FindCategoryByIdRepository:           findCategoryRepo,
		FindAccountByIdRepository:            findAccountRepo,
	}
}

// CreateRecurringTransactionControllerBody defines the expected body for creating a rule
type CreateRecurringTransactionControllerBody struct {
	Description  string  `json:"description" validate:"required,min=2,max=255"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Type         string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	CategoryId   string  `json:"categoryId" validate:"required"`
	AccountId    string  `json:"accountId" validate:"required"`
	CreditCardId string  `json:"creditCardId" validate:"omitempty"`
	Frequency    string  `json:"frequency" validate:"required,oneof=WEEKLY MONTHLY YEARLY"`
	DayOfMonth   int     `json:"dayOfMonth" validate:"omitempty,min=1,max=31,required_if=Frequency MONTHLY,required_if=Frequency YEARLY"`
	Weekday      int     `json:"weekday" validate:"min=0,max=6"`
	StartDate    string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// Handle processes the HTTP request for creating a recurring rule
func (c *CreateRecurringTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecurringTransactionControllerBody
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

	categoryId, err := primitive.ObjectIDFromHex(body.CategoryId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid category ID format",
		}, http.StatusBadRequest)
	}
	accountId, err := primitive.ObjectIDFromHex(body.AccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid account ID format",
		}, http.StatusBadRequest)
	}

	category, err := c.FindCategoryByIdRepository.Find(categoryId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding category",
		}, http.StatusInternalServerError)
	}
	if category == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "category not found",
		}, http.StatusNotFound)
	}

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

	var creditCardId *primitive.ObjectID
	if body.CreditCardId != "" {
		id, err := primitive.ObjectIDFromHex(body.CreditCardId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid credit card ID format",
			}, http.StatusBadRequest)
		}
		creditCardId = &id
	}

	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid start date format",
		}, http.StatusBadRequest)
	}

	var endDate *time.Time
	if body.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", body.EndDate)
		if err != nil || parsed.Before(startDate) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "end date must be after start date",
			}, http.StatusBadRequest)
		}
		endDate = &parsed
	}

	rule, err := c.CreateRecurringTransactionRepository.Create(&models.RecurringTransaction{
		UserId:      userId,
		Description: body.Description,
		Amount:      body.Amount,
		Type:        body.Type,
		CategoryId:  categoryId,
		AccountId:   accountId,
		CreditCard:  creditCardId,
		Frequency:   body.Frequency,
		DayOfMonth:  body.DayOfMonth,
		Weekday:     body.Weekday,
		StartDate:   startDate,
		EndDate:     endDate,
		Active:      true,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating recurring transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(rule, http.StatusCreated)
}
