package tag

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetTagsController handles retrieving all tags
type GetTagsController struct {
	FindTagsRepository usecase.FindTagsRepository
}

// NewGetTagsController creates a new instance of GetTagsController
func NewGetTagsController(repo usecase.FindTagsRepository) *GetTagsController {
	return &GetTagsController{FindTagsRepository: repo}
}

// Handle processes the HTTP request to retrieve tags
func (c *GetTagsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	tags, err := c.FindTagsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving tags",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(tags, http.StatusOK)
}
