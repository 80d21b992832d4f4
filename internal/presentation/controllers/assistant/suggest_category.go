package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/infra/ai"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// SuggestCategoryController asks the model which of the user's categories
// fits a transaction description
type SuggestCategoryController struct {
	Validate                 *validator.Validate
	Client                   *ai.Client
	FindCategoriesRepository usecase.FindCategoriesRepository
}

// NewSuggestCategoryController initializes a SuggestCategoryController
func NewSuggestCategoryController(client *ai.Client, findCategoriesRepo usecase.FindCategoriesRepository) *SuggestCategoryController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &SuggestCategoryController{
		Validate:                 validate,
		Client:                   client,
		FindCategoriesRepository: findCategoriesRepo,
	}
}

// SuggestCategoryControllerBody defines the expected body for a suggestion request
type SuggestCategoryControllerBody struct {
	Description string `json:"description" validate:"required,min=2,max=255"`
}

// SuggestCategoryControllerResponse carries the suggested category name,
// empty when none of the user's categories fits
type SuggestCategoryControllerResponse struct {
	Category string `json:"category"`
}

// Handle processes the HTTP request for a category suggestion
func (c *SuggestCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SuggestCategoryControllerBody
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

	categories, err := c.FindCategoriesRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving categories",
		}, http.StatusInternalServerError)
	}

	suggestion, err := c.Client.SuggestCategory(r.Req.Context(), body.Description, categories)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when suggesting a category",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&SuggestCategoryControllerResponse{Category: suggestion}, http.StatusOK)
}
