package ai

import "testing"

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain object",
			input:    `{"category":"Alimentação"}`,
			expected: `{"category":"Alimentação"}`,
		},
		{
			name:     "fenced object",
			input:    "```json\n{\"category\":\"Transporte\"}\n```",
			expected: `{"category":"Transporte"}`,
		},
		{
			name:     "fenced array with chatter",
			input:    "Sure! Here it is:\n```json\n[{\"categoryName\":\"Lazer\",\"forecastAmount\":120.5}]\n```\nHope it helps.",
			expected: `[{"categoryName":"Lazer","forecastAmount":120.5}]`,
		},
		{
			name:     "no json at all",
			input:    "no structured answer",
			expected: "no structured answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanModelJSON(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
