package helpers

import (
	"sort"

	"github.com/controlenamao/finance-backend/internal/domain/models"
)

// SortTransactionsByDate sorts a slice of transactions by date in
// descending order (newest transactions first).
func SortTransactionsByDate(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[j].Date.Before(transactions[i].Date)
	})
}
