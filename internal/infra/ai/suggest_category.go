package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"google.golang.org/genai"
)

type suggestCategoryAnswer struct {
	Category string `json:"category"`
}

// SuggestCategory asks the model to pick the best matching category name for
// a free-text transaction description. It returns an empty string when the
// model finds no fit among the user's categories.
func (c *Client) SuggestCategory(ctx context.Context, description string, categories []models.Category) (string, error) {
	if len(categories) == 0 {
		return "", nil
	}

	prompt := buildSuggestCategoryPrompt(description, categories)

	resp, err := c.generate(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"category": {Type: genai.TypeString},
			},
			Required: []string{"category"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate category suggestion: %w", err)
	}

	var answer suggestCategoryAnswer
	if err := json.Unmarshal([]byte(CleanModelJSON(resp.Text())), &answer); err != nil {
		return "", fmt.Errorf("decode category suggestion: %w", err)
	}

	// the model occasionally invents a name; only trust answers that match
	// an existing category
	for _, category := range categories {
		if category.Name == answer.Category {
			return answer.Category, nil
		}
	}

	return "", nil
}
