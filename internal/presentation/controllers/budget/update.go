package budget

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateBudgetController handles changing a budget's amount
type UpdateBudgetController struct {
	Validate                     *validator.Validate
	UpdateBudgetAmountRepository usecase.UpdateBudgetAmountRepository
	FindBudgetsRepository        usecase.FindBudgetsRepository
}

// NewUpdateBudgetController initializes a new UpdateBudgetController
func NewUpdateBudgetController(
	updateRepo usecase.UpdateBudgetAmountRepository,
	findBudgetsRepo usecase.FindBudgetsRepository,
) *UpdateBudgetController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateBudgetController{
		Validate:                     validate,
		UpdateBudgetAmountRepository: updateRepo,
		FindBudgetsRepository:        findBudgetsRepo,
	}
}

type UpdateBudgetControllerBody struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Handle processes the HTTP request to update a budget
func (c *UpdateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("budgetId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid budget ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body UpdateBudgetControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	// ownership check before the write
	budgets, err := c.FindBudgetsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding budget"}, http.StatusInternalServerError)
	}
	owned := false
	for _, budget := range budgets {
		if budget.Id == id {
			owned = true
			break
		}
	}
	if !owned {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "budget not found"}, http.StatusNotFound)
	}

	updated, err := c.UpdateBudgetAmountRepository.UpdateAmount(id, body.Amount)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating budget"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
