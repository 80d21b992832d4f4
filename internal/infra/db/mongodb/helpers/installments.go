package helpers

import (
	"fmt"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"github.com/shopspring/decimal"
)

// ProjectInstallments expands a transaction list into statement entries.
// Non-installment transactions pass through one-to-one; each installment
// original is replaced by exactly TotalInstallments projected entries, one
// per month starting at the purchase date, each carrying the per-installment
// amount. The original purchase row itself is never billable.
//
// Projections are recomputed on every call and never persisted; their ids
// are derived from the original so the UI can correlate them back, but they
// cannot be edited or deleted independently.
func ProjectInstallments(transactions []models.Transaction) []models.StatementEntry {
	entries := make([]models.StatementEntry, 0, len(transactions))

	for _, t := range transactions {
		if !t.IsInstallment || t.TotalInstallments <= 1 {
			entries = append(entries, models.StatementEntry{
				Id:           t.Id.Hex(),
				Type:         t.Type,
				Amount:       t.Amount,
				Date:         t.Date,
				Description:  t.Description,
				CategoryId:   t.CategoryId,
				AccountId:    t.AccountId,
				CreditCardId: t.CreditCardId,
			})
			continue
		}

		n := t.TotalInstallments
		amount := InstallmentAmount(t.Amount, n)
		for k := 0; k < n; k++ {
			entries = append(entries, models.StatementEntry{
				Id:                fmt.Sprintf("%s-installment-%d", t.Id.Hex(), k+1),
				Type:              t.Type,
				Amount:            amount,
				Date:              AddMonthsClamped(t.Date, k),
				Description:       fmt.Sprintf("%s (%d/%d)", t.Description, k+1, n),
				CategoryId:        t.CategoryId,
				AccountId:         t.AccountId,
				CreditCardId:      t.CreditCardId,
				InstallmentIndex:  k + 1,
				TotalInstallments: n,
			})
		}
	}

	return entries
}

// InstallmentAmount is the per-installment share of a purchase, rounded
// half-up to cents. Each installment is rounded independently; the sum may
// differ from the original by up to n*0.005 and no remainder correction is
// applied.
func InstallmentAmount(total float64, n int) float64 {
	share := decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(n))).Round(2)
	value, _ := share.Float64()
	return value
}
