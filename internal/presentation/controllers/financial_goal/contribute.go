package financial_goal

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContributeFinancialGoalController adds an amount to a goal's saved total
type ContributeFinancialGoalController struct {
	Validate                            *validator.Validate
	FindFinancialGoalByIdRepository     usecase.FindFinancialGoalByIdRepository
	ContributeToFinancialGoalRepository usecase.ContributeToFinancialGoalRepository
}

// NewContributeFinancialGoalController initializes a ContributeFinancialGoalController
func NewContributeFinancialGoalController(
	findByIdRepo usecase.FindFinancialGoalByIdRepository,
	contributeRepo usecase.ContributeToFinancialGoalRepository,
) *ContributeFinancialGoalController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &ContributeFinancialGoalController{
		Validate:                            validate,
		FindFinancialGoalByIdRepository:     findByIdRepo,
		ContributeToFinancialGoalRepository: contributeRepo,
	}
}

type ContributeFinancialGoalControllerBody struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// Handle processes the HTTP request to contribute to a financial goal
func (c *ContributeFinancialGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("goalId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid goal ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body ContributeFinancialGoalControllerBody
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

	existing, err := c.FindFinancialGoalByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding financial goal",
		}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "financial goal not found",
		}, http.StatusNotFound)
	}

	goal, err := c.ContributeToFinancialGoalRepository.Contribute(id, userId, body.Amount)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when contributing to financial goal",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(goal, http.StatusOK)
}
