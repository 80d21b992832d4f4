package category

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

// CreateCategoryController handles creating new categories
type CreateCategoryController struct {
	Validate                     *validator.Validate
	CreateCategoryRepository     usecase.CreateCategoryRepository
	FindCategoryByNameRepository usecase.FindCategoryByNameRepository
}

// NewCreateCategoryController initializes a CreateCategoryController
func NewCreateCategoryController(
	createCategoryRepository usecase.CreateCategoryRepository,
	findCategoryByNameRepository usecase.FindCategoryByNameRepository,
) *CreateCategoryController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateCategoryController{
		Validate:                     validate,
		CreateCategoryRepository:     createCategoryRepository,
		FindCategoryByNameRepository: findCategoryByNameRepository,
	}
}

// CreateCategoryControllerBody defines the expected body for creating a category
type CreateCategoryControllerBody struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Type string `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Icon string `json:"icon" validate:"omitempty,max=50"`
}

// Handle processes the HTTP request for creating a category
func (c *CreateCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateCategoryControllerBody
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

	existing, err := c.FindCategoryByNameRepository.FindByName(body.Name, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when checking for category name",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a category with this name already exists",
		}, http.StatusConflict)
	}

	now := time.Now()
	category, err := c.CreateCategoryRepository.Create(&models.Category{
		UserId:    userId,
		Name:      body.Name,
		Type:      body.Type,
		Icon:      models.ResolveIcon(body.Icon),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating category",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(category, http.StatusCreated)
}
