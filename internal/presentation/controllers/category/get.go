package category

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetCategoriesController handles retrieving all categories
type GetCategoriesController struct {
	FindCategoriesRepository usecase.FindCategoriesRepository
}

// NewGetCategoriesController creates a new instance of GetCategoriesController
func NewGetCategoriesController(repo usecase.FindCategoriesRepository) *GetCategoriesController {
	return &GetCategoriesController{FindCategoriesRepository: repo}
}

// Handle processes the HTTP request to retrieve categories
func (c *GetCategoriesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	return helpers.CreateResponse(categories, http.StatusOK)
}
