package financial_goal

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

// CreateFinancialGoalController handles creating new financial goals
type CreateFinancialGoalController struct {
	Validate                      *validator.Validate
	CreateFinancialGoalRepository usecase.CreateFinancialGoalRepository
}

// NewCreateFinancialGoalController initializes a CreateFinancialGoalController
func NewCreateFinancialGoalController(createRepo usecase.CreateFinancialGoalRepository) *CreateFinancialGoalController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateFinancialGoalController{
		Validate:                      validate,
		CreateFinancialGoalRepository: createRepo,
	}
}

// CreateFinancialGoalControllerBody defines the expected body for creating a goal
type CreateFinancialGoalControllerBody struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	TargetAmount  float64 `json:"targetAmount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount" validate:"min=0"`
	Deadline      string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Icon          string  `json:"icon" validate:"omitempty,max=50"`
}

// Handle processes the HTTP request for creating a financial goal
func (c *CreateFinancialGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateFinancialGoalControllerBody
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

	var deadline *time.Time
	if body.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", body.Deadline)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid deadline format",
			}, http.StatusBadRequest)
		}
		deadline = &parsed
	}

	now := time.Now()
	goal, err := c.CreateFinancialGoalRepository.Create(&models.FinancialGoal{
		UserId:        userId,
		Name:          body.Name,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      deadline,
		Icon:          models.ResolveIcon(body.Icon),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating financial goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(goal, http.StatusCreated)
}
