package category

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetCategoryByIdController handles retrieving a single category
type GetCategoryByIdController struct {
	FindCategoryByIdRepository usecase.FindCategoryByIdRepository
}

// NewGetCategoryByIdController creates a new instance of GetCategoryByIdController
func NewGetCategoryByIdController(repo usecase.FindCategoryByIdRepository) *GetCategoryByIdController {
	return &GetCategoryByIdController{FindCategoryByIdRepository: repo}
}

// Handle processes the HTTP request to retrieve a category by its id
func (c *GetCategoryByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("categoryId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid category ID format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	category, err := c.FindCategoryByIdRepository.Find(id, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving category",
		}, http.StatusInternalServerError)
	}
	if category == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "category not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(category, http.StatusOK)
}
