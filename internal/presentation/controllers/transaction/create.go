package transaction

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

// CreateTransactionController handles creating new transactions
type CreateTransactionController struct {
	Validate                               *validator.Validate
	CreateTransactionRepository            usecase.CreateTransactionRepository
	CreateTransactionWithBalanceRepository usecase.CreateTransactionWithBalanceRepository
	FindAccountByIdRepository              usecase.FindAccountByIdRepository
	FindCategoryByIdRepository             usecase.FindCategoryByIdRepository
	FindCreditCardByIdRepository           usecase.FindCreditCardByIdRepository
}

// NewCreateTransactionController initializes a CreateTransactionController
func NewCreateTransactionController(
	createRepo usecase.CreateTransactionRepository,
	createWithBalanceRepo usecase.CreateTransactionWithBalanceRepository,
	findAccountRepo usecase.FindAccountByIdRepository,
	findCategoryRepo usecase.FindCategoryByIdRepository,
	findCreditCardRepo usecase.FindCreditCardByIdRepository,
) *CreateTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateTransactionController{
		Validate:                               validate,
		CreateTransactionRepository:            createRepo,
		CreateTransactionWithBalanceRepository: createWithBalanceRepo,
		FindAccountByIdRepository:              findAccountRepo,
		FindCategoryByIdRepository:             findCategoryRepo,
		FindCreditCardByIdRepository:           findCreditCardRepo,
	}
}

// CreateTransactionControllerBody defines the expected body for creating a transaction
type CreateTransactionControllerBody struct {
	Type              string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description       string  `json:"description" validate:"required,min=2,max=255"`
	CategoryId        string  `json:"categoryId" validate:"required"`
	AccountId         string  `json:"accountId" validate:"required"`
	CreditCardId      string  `json:"creditCardId" validate:"omitempty"`
	IsInstallment     bool    `json:"isInstallment"`
	TotalInstallments int     `json:"totalInstallments" validate:"omitempty,min=2,max=99,required_if=IsInstallment true"`
}

// Handle processes the HTTP request for creating a transaction
func (c *CreateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateTransactionControllerBody
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

	if body.IsInstallment && body.CreditCardId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "installment purchases require a credit card",
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

		card, err := c.FindCreditCardByIdRepository.Find(id, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when finding credit card",
			}, http.StatusInternalServerError)
		}
		if card == nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "credit card not found",
			}, http.StatusNotFound)
		}

		creditCardId = &id
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid date format",
		}, http.StatusBadRequest)
	}

	now := time.Now()
	transaction := &models.Transaction{
		UserId:            userId,
		Type:              body.Type,
		Amount:            body.Amount,
		Date:              date,
		Description:       body.Description,
		CategoryId:        categoryId,
		AccountId:         accountId,
		CreditCardId:      creditCardId,
		IsInstallment:     body.IsInstallment,
		TotalInstallments: body.TotalInstallments,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Card charges only hit the account balance when the statement is paid,
	// so they skip the balance adjustment entirely.
	var created *models.Transaction
	if creditCardId != nil {
		created, err = c.CreateTransactionRepository.Create(transaction)
	} else {
		created, err = c.CreateTransactionWithBalanceRepository.CreateWithBalance(transaction)
	}
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(created, http.StatusCreated)
}
