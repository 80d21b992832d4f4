package settings

import (
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
)

// GetSettingsController handles retrieving the user's settings
type GetSettingsController struct {
	FindUserSettingsRepository usecase.FindUserSettingsRepository
}

// NewGetSettingsController creates a new instance of GetSettingsController
func NewGetSettingsController(repo usecase.FindUserSettingsRepository) *GetSettingsController {
	return &GetSettingsController{FindUserSettingsRepository: repo}
}

// Handle processes the HTTP request to retrieve settings
func (c *GetSettingsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	settings, err := c.FindUserSettingsRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving settings",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(settings, http.StatusOK)
}
