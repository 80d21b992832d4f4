package category

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteCategoryController handles deleting categories
type DeleteCategoryController struct {
	DeleteCategoryRepository usecase.DeleteCategoryRepository
}

// NewDeleteCategoryController initializes a new DeleteCategoryController
func NewDeleteCategoryController(deleteRepo usecase.DeleteCategoryRepository) *DeleteCategoryController {
	return &DeleteCategoryController{DeleteCategoryRepository: deleteRepo}
}

// Handle processes the HTTP request to delete a category
func (c *DeleteCategoryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteCategoryRepository.Delete(id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting category",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
