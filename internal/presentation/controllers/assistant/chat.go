package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/controlenamao/finance-backend/internal/infra/ai"
	"github.com/controlenamao/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/controlenamao/finance-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

// ChatController forwards the user's message to the financial agent
type ChatController struct {
	Validate *validator.Validate
	Agent    *ai.Agent
}

// NewChatController initializes a ChatController
func NewChatController(agent *ai.Agent) *ChatController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &ChatController{Validate: validate, Agent: agent}
}

// ChatControllerBody defines the expected body for a chat message
type ChatControllerBody struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatControllerResponse carries the agent's answer
type ChatControllerResponse struct {
	Answer string `json:"answer"`
}

// Handle processes the HTTP request for an assistant chat turn
func (c *ChatController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body ChatControllerBody
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

	answer, err := c.Agent.Chat(r.Req.Context(), userId, body.Message)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when talking to the assistant",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&ChatControllerResponse{Answer: answer}, http.StatusOK)
}
