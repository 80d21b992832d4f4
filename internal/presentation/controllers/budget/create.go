package budget

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

// CreateBudgetController handles creating new budgets
type CreateBudgetController struct {
	Validate                         *validator.Validate
	CreateBudgetRepository           usecase.CreateBudgetRepository
	FindCategoryByIdRepository       usecase.FindCategoryByIdRepository
	FindBudgetByCategoryIdRepository usecase.FindBudgetByCategoryIdRepository
}

// NewCreateBudgetController initializes a CreateBudgetController
func NewCreateBudgetController(
	createRepo usecase.CreateBudgetRepository,
	findCategoryRepo usecase.FindCategoryByIdRepository,
	findByCategoryRepo usecase.FindBudgetByCategoryIdRepository,
) *CreateBudgetController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateBudgetController{
		Validate:                         validate,
		CreateBudgetRepository:           createRepo,
		FindCategoryByIdRepository:       findCategoryRepo,
		FindBudgetByCategoryIdRepository: findByCategoryRepo,
	}
}

// CreateBudgetControllerBody defines the expected body for creating a budget
type CreateBudgetControllerBody struct {
	CategoryId string  `json:"categoryId" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// Handle processes the HTTP request for creating a budget
func (c *CreateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateBudgetControllerBody
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

	existing, err := c.FindBudgetByCategoryIdRepository.FindByCategoryId(categoryId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when checking existing budget",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a budget for this category already exists",
		}, http.StatusConflict)
	}

	budget, err := c.CreateBudgetRepository.Create(&models.Budget{
		UserId:     userId,
		CategoryId: categoryId,
		Amount:     body.Amount,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating budget",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(budget, http.StatusCreated)
}
