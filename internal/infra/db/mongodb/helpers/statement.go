package helpers

import (
	"sort"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StatementResult struct {
	Transactions []models.StatementEntry `json:"transactions"`
	Total        float64                 `json:"total"`
}

// BuildStatement intersects projected entries with one card's billing cycle
// and produces the display-ready list and total. Sorted by date descending;
// ties keep input order.
func BuildStatement(entries []models.StatementEntry, creditCardId primitive.ObjectID, period StatementPeriod) StatementResult {
	filtered := make([]models.StatementEntry, 0)
	var total float64

	for _, e := range entries {
		if e.CreditCardId == nil || *e.CreditCardId != creditCardId {
			continue
		}
		if !period.Contains(e.Date) {
			continue
		}
		filtered = append(filtered, e)
		total += e.Amount
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[j].Date.Before(filtered[i].Date)
	})

	return StatementResult{Transactions: filtered, Total: total}
}
