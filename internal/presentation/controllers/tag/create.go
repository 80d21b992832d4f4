package tag

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// CreateTagController handles creating new tags
type CreateTagController struct {
	Validate            *validator.Validate
	CreateTagRepository usecase.CreateTagRepository
}

// NewCreateTagController initializes a CreateTagController
func NewCreateTagController(createRepo usecase.CreateTagRepository) *CreateTagController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &CreateTagController{Validate: validate, CreateTagRepository: createRepo}
}

// CreateTagControllerBody defines the expected body for creating a tag
type CreateTagControllerBody struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// Handle processes the HTTP request for creating a tag
func (c *CreateTagController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateTagControllerBody
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

	tag, err := c.CreateTagRepository.Create(&models.Tag{
		UserId: userId,
		Name:   body.Name,
		Color:  body.Color,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating tag",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(tag, http.StatusCreated)
}
