package ai

import (
	"context"

	"google.golang.org/genai"
)

const DefaultModelName = "gemini-2.0-flash"

// Client wraps the generative-AI SDK with the model the assistant features
// run on.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if model == "" {
		model = DefaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, err
	}

	return &Client{genai: client, model: model}, nil
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.genai.Models.GenerateContent(ctx, c.model, contents, config)
}
