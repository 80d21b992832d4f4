package ai

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/genai"
)

const fallbackAnswer = "Desculpe, não consegui entender seu pedido. Pode reformular?"

// Agent answers free-text requests and executes financial actions through
// registered tools when the model decides to call one.
type Agent struct {
	client         *Client
	addTransaction *AddTransactionTool
	updateBudget   *UpdateBudgetTool
}

func NewAgent(client *Client, addTransaction *AddTransactionTool, updateBudget *UpdateBudgetTool) *Agent {
	return &Agent{
		client:         client,
		addTransaction: addTransaction,
		updateBudget:   updateBudget,
	}
}

func agentTools() []*genai.Tool {
	return []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        toolAddTransaction,
					Description: "Registra uma transação (receita ou despesa) para o usuário.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"description":  {Type: genai.TypeString, Description: "Descrição da transação"},
							"amount":       {Type: genai.TypeNumber, Description: "Valor em reais, sempre positivo"},
							"type":         {Type: genai.TypeString, Enum: []string{"INCOME", "EXPENSE"}},
							"categoryName": {Type: genai.TypeString, Description: "Nome exato de uma categoria do usuário"},
							"accountName":  {Type: genai.TypeString, Description: "Nome da conta, opcional"},
						},
						Required: []string{"description", "amount", "type", "categoryName"},
					},
				},
				{
					Name:        toolUpdateBudget,
					Description: "Atualiza o valor do orçamento de uma categoria.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"categoryName": {Type: genai.TypeString, Description: "Nome exato da categoria"},
							"amount":       {Type: genai.TypeNumber, Description: "Novo valor do orçamento em reais"},
						},
						Required: []string{"categoryName", "amount"},
					},
				},
			},
		},
	}
}

// Chat sends the user's message to the model and dispatches at most one tool
// call. The tool's outcome message is returned to the user verbatim.
func (a *Agent) Chat(ctx context.Context, userId primitive.ObjectID, message string) (string, error) {
	resp, err := a.client.generate(ctx, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(agentSystemPrompt, genai.RoleUser),
		Tools:             agentTools(),
	})
	if err != nil {
		return "", fmt.Errorf("generate assistant answer: %w", err)
	}

	calls := resp.FunctionCalls()
	if len(calls) > 0 {
		return a.dispatch(userId, calls[0])
	}

	if text := resp.Text(); text != "" {
		return text, nil
	}

	return fallbackAnswer, nil
}

func (a *Agent) dispatch(userId primitive.ObjectID, call *genai.FunctionCall) (string, error) {
	switch call.Name {
	case toolAddTransaction:
		return a.addTransaction.Call(userId, call.Args)
	case toolUpdateBudget:
		return a.updateBudget.Call(userId, call.Args)
	default:
		return fallbackAnswer, nil
	}
}
