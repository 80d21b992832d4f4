package helpers

import "github.com/controlenamao/finance-backend/internal/domain/models"

type MonthlySummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CalculateMonthlySummary totals income and expense over an already
// month-filtered transaction list.
func CalculateMonthlySummary(transactions []models.Transaction) MonthlySummary {
	var summary MonthlySummary

	for _, t := range transactions {
		switch t.Type {
		case "INCOME":
			summary.Income += t.Amount
		case "EXPENSE":
			summary.Expense += t.Amount
		}
	}

	summary.Balance = summary.Income - summary.Expense
	return summary
}

// CalculateCategorySpending sums expense amounts per category over an
// already-filtered list. Used by the budget views and the forecast flow.
func CalculateCategorySpending(transactions []models.Transaction) map[string]float64 {
	spending := make(map[string]float64)
	for _, t := range transactions {
		if t.Type != "EXPENSE" {
			continue
		}
		spending[t.CategoryId.Hex()] += t.Amount
	}
	return spending
}
