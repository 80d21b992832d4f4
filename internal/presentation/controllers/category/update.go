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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateCategoryController handles updating categories
type UpdateCategoryController struct {
	Validate                     *validator.Validate
	UpdateCategoryRepository     usecase.UpdateCategoryRepository
	FindCategoryByIdRepository   usecase.FindCategoryByIdRepository
	FindCategoryByNameRepository usecase.FindCategoryByNameRepository
}

// NewUpdateCategoryController initializes a new UpdateCategoryController
func NewUpdateCategoryController(
	updateRepo usecase.UpdateCategoryRepository,
	findByIdRepo usecase.FindCategoryByIdRepository,
	findByNameRepo usecase.FindCategoryByNameRepository,
) *UpdateCategoryController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateCategoryController{
		Validate:                     validate,
		UpdateCategoryRepository:     updateRepo,
		FindCategoryByIdRepository:   findByIdRepo,
		FindCategoryByNameRepository: findByNameRepo,
	}
}

type UpdateCategoryControllerBody struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Type string `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Icon string `json:"icon" validate:"omitempty,max=50"`
}

// Handle processes the HTTP request to update a category
func (c *UpdateCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("categoryId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid category ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	existing, err := c.FindCategoryByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when finding category"}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "category not found"}, http.StatusNotFound)
	}

	var body UpdateCategoryControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	if existing.Name != body.Name {
		other, err := c.FindCategoryByNameRepository.FindByName(body.Name, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when checking category name"}, http.StatusInternalServerError)
		}
		if other != nil && other.Id != id {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "a category with this name already exists"}, http.StatusConflict)
		}
	}

	updated, err := c.UpdateCategoryRepository.Update(id, &models.Category{
		Id:        existing.Id,
		UserId:    userId,
		Name:      body.Name,
		Type:      body.Type,
		Icon:      models.ResolveIcon(body.Icon),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating category"}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
