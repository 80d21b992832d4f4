package settings

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// UpdateSettingsController handles replacing the user's settings. The store
// keeps one document per user; the last write wins.
type UpdateSettingsController struct {
	Validate                   *validator.Validate
	SaveUserSettingsRepository usecase.SaveUserSettingsRepository
}

// NewUpdateSettingsController initializes an UpdateSettingsController
func NewUpdateSettingsController(saveRepo usecase.SaveUserSettingsRepository) *UpdateSettingsController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateSettingsController{
		Validate:                   validate,
		SaveUserSettingsRepository: saveRepo,
	}
}

type UpdateSettingsControllerBody struct {
	Currency             string          `json:"currency" validate:"required,len=3,uppercase"`
	DashboardCards       map[string]bool `json:"dashboardCards" validate:"required"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	MonthStartDay        int             `json:"monthStartDay" validate:"required,min=1,max=28"`
}

// Handle processes the HTTP request to update settings
func (c *UpdateSettingsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateSettingsControllerBody
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

	settings := &models.UserSettings{
		Currency:             body.Currency,
		DashboardCards:       body.DashboardCards,
		NotificationsEnabled: body.NotificationsEnabled,
		MonthStartDay:        body.MonthStartDay,
	}

	if err := c.SaveUserSettingsRepository.Save(userId, settings); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when saving settings",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(settings, http.StatusOK)
}
