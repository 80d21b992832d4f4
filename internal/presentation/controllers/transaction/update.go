package transaction

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateTransactionController handles updating transactions
type UpdateTransactionController struct {
	Validate                      *validator.Validate
	UpdateTransactionRepository   usecase.UpdateTransactionRepository
	FindTransactionByIdRepository usecase.FindTransactionByIdRepository
}

// NewUpdateTransactionController initializes a new UpdateTransactionController
func NewUpdateTransactionController(
	updateRepo usecase.UpdateTransactionRepository,
	findByIdRepo usecase.FindTransactionByIdRepository,
) *UpdateTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateTransactionController{
		Validate:                      validate,
		UpdateTransactionRepository:   updateRepo,
		FindTransactionByIdRepository: findByIdRepo,
	}
}

type UpdateTransactionControllerBody struct {
	Type        string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"required,min=2,max=255"`
	CategoryId  string  `json:"categoryId" validate:"required"`
}

// Handle processes the HTTP request to update a transaction
func (c *UpdateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	rawId := r.Req.PathValue("transactionId")

	// Projected installment entries are derived on render and never stored.
	// Editing one individually makes no sense; the whole purchase group must
	// be deleted and recreated instead.
	if strings.Contains(rawId, "-installment-") {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "projected installments cannot be edited individually; delete the original purchase and create it again",
		}, http.StatusUnprocessableEntity)
	}

	id, err := primitive.ObjectIDFromHex(rawId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid transaction ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindTransactionByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding transaction"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "transaction not found"}, http.StatusNotFound)
	}

	var body UpdateTransactionControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	categoryId, err := primitive.ObjectIDFromHex(body.CategoryId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid category ID format"}, http.StatusBadRequest)
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid date format"}, http.StatusBadRequest)
	}

	updated, err := c.UpdateTransactionRepository.Update(id, &models.Transaction{
		Id:                existing.Id,
		UserId:            userId,
		Type:              body.Type,
		Amount:            body.Amount,
		Date:              date,
		Description:       body.Description,
		CategoryId:        categoryId,
		AccountId:         existing.AccountId,
		CreditCardId:      existing.CreditCardId,
		IsInstallment:     existing.IsInstallment,
		TotalInstallments: existing.TotalInstallments,
		CreatedAt:         existing.CreatedAt,
		UpdatedAt:         time.Now(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating transaction"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
