package tag

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/controlenamao/finance-backend/internal/domain/usecase"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateTagController handles updating tags
type UpdateTagController struct {
	Validate            *validator.Validate
	UpdateTagRepository usecase.UpdateTagRepository
}

// NewUpdateTagController initializes a new UpdateTagController
func NewUpdateTagController(updateRepo usecase.UpdateTagRepository) *UpdateTagController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdateTagController{Validate: validate, UpdateTagRepository: updateRepo}
}

type UpdateTagControllerBody struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// Handle processes the HTTP request to update a tag
func (c *UpdateTagController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	id, err := primitive.ObjectIDFromHex(r.Req.PathValue("tagId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid tag ID format"}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	var body UpdateTagControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "invalid body request"}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: helpers.GetErrorMessages(c.Validate, err)}, http.StatusUnprocessableEntity)
	}

	updated, err := c.UpdateTagRepository.Update(id, &models.Tag{
		Id:     id,
		UserId: userId,
		Name:   body.Name,
		Color:  body.Color,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "an error occurred when updating tag"}, http.StatusInternalServerError)
	}
	if updated == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{Error: "tag not found"}, http.StatusNotFound)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
