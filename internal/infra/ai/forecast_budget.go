package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// CategoryHistory carries a category's recent monthly spending totals,
// oldest month first.
type CategoryHistory struct {
	CategoryName  string    `json:"categoryName"`
	MonthlyTotals []float64 `json:"monthlyTotals"`
}

// BudgetForecast is the projected spending for one category next month.
type BudgetForecast struct {
	CategoryName   string  `json:"categoryName"`
	ForecastAmount float64 `json:"forecastAmount"`
}

// ForecastBudget projects next month's spending per category from the
// provided history.
func (c *Client) ForecastBudget(ctx context.Context, history []CategoryHistory) ([]BudgetForecast, error) {
	if len(history) == 0 {
		return []BudgetForecast{}, nil
	}

	prompt := buildForecastBudgetPrompt(history)

	resp, err := c.generate(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"categoryName":   {Type: genai.TypeString},
					"forecastAmount": {Type: genai.TypeNumber},
				},
				Required: []string{"categoryName", "forecastAmount"},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate budget forecast: %w", err)
	}

	var forecasts []BudgetForecast
	if err := json.Unmarshal([]byte(CleanModelJSON(resp.Text())), &forecasts); err != nil {
		return nil, fmt.Errorf("decode budget forecast: %w", err)
	}

	return forecasts, nil
}
