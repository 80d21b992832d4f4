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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateFinancialGoalController handles updating financial goals
type UpdateFinancialGoalController struct {
	Validate                        *validator.Validate
	UpdateFinancialGoalRepository   usecase.UpdateFinancialGoalRepository
	FindFinancialGoalByIdRepository usecase.FindFinancialGoalByIdRepository
}

// NewUpdateFinancialGoalController initializes a new UpdateFinancialGoalController
func NewUpdateFinancialGoalController(
	updateRepo usecase.UpdateFinancialGoalRepository,
	findByIdRepo usecase.FindFinancialGoalByIdRepository,
) *UpdateFinancialGoalController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateFinancialGoalController{
		Validate:                        validate,
		UpdateFinancialGoalRepository:   updateRepo,
		FindFinancialGoalByIdRepository: findByIdRepo,
	}
}

type UpdateFinancialGoalControllerBody struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	TargetAmount  float64 `json:"targetAmount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount" validate:"min=0"`
	Deadline      string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Icon          string  `json:"icon" validate:"omitempty,max=50"`
}

// Handle processes the HTTP request to update a financial goal
func (c *UpdateFinancialGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("goalId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid goal ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindFinancialGoalByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding financial goal"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "financial goal not found"}, http.StatusNotFound)
	}

	var body UpdateFinancialGoalControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	var deadline *time.Time
	if body.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", body.Deadline)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid deadline format"}, http.StatusBadRequest)
		}
		deadline = &parsed
	}

	updated, err := c.UpdateFinancialGoalRepository.Update(id, &models.FinancialGoal{
		Id:            existing.Id,
		UserId:        userId,
		Name:          body.Name,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      deadline,
		Icon:          models.ResolveIcon(body.Icon),
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating financial goal"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
