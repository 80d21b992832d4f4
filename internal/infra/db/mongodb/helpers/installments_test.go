package helpers

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInstallmentAmount(t *testing.T) {
	tests := []struct {
		total float64
		n     int
		want  float64
	}{
		{100.00, 3, 33.33},
		{100.00, 2, 50.00},
		{99.99, 3, 33.33},
		{10.00, 3, 3.33},
		{0.10, 3, 0.03},
		{1250.50, 12, 104.21}, // 104.2083... rounds half-up to 104.21
		{0.05, 2, 0.03},       // 0.025 rounds half-up
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f/%d", tt.total, tt.n), func(t *testing.T) {
			if got := InstallmentAmount(tt.total, tt.n); got != tt.want {
				t.Errorf("InstallmentAmount(%v, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			}
		})
	}
}

func TestProjectInstallmentsReplacesOriginal(t *testing.T) {
	cardId := primitive.NewObjectID()
	original := models.Transaction{
		Id:                primitive.NewObjectID(),
		Type:              "EXPENSE",
		Amount:            100.00,
		Date:              time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Description:       "Notebook",
		CreditCardId:      &cardId,
		IsInstallment:     true,
		TotalInstallments: 3,
	}

	entries := ProjectInstallments([]models.Transaction{original})

	if len(entries) != 3 {
		t.Fatalf("expected 3 projections, got %d", len(entries))
	}

	for k, e := range entries {
		wantId := fmt.Sprintf("%s-installment-%d", original.Id.Hex(), k+1)
		if e.Id != wantId {
			t.Errorf("projection %d id = %q, want %q", k, e.Id, wantId)
		}
		wantDate := time.Date(2024, time.January+time.Month(k), 15, 0, 0, 0, 0, time.UTC)
		if !e.Date.Equal(wantDate) {
			t.Errorf("projection %d date = %v, want %v", k, e.Date, wantDate)
		}
		if e.Amount != 33.33 {
			t.Errorf("projection %d amount = %v, want 33.33", k, e.Amount)
		}
		wantDesc := fmt.Sprintf("Notebook (%d/3)", k+1)
		if e.Description != wantDesc {
			t.Errorf("projection %d description = %q, want %q", k, e.Description, wantDesc)
		}
	}

	// 3 x 33.33 = 99.99: the 0.01 discrepancy is expected, no remainder
	// correction is applied.
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}
	if math.Abs(sum-99.99) > 1e-9 {
		t.Errorf("projected sum = %v, want 99.99", sum)
	}
}

func TestProjectInstallmentsSumStaysWithinTolerance(t *testing.T) {
	amounts := []float64{100.00, 99.99, 10.00, 0.10, 1250.50, 73.41}

	for _, amount := range amounts {
		for n := 2; n <= 12; n++ {
			tx := models.Transaction{
				Id:                primitive.NewObjectID(),
				Type:              "EXPENSE",
				Amount:            amount,
				Date:              time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
				IsInstallment:     true,
				TotalInstallments: n,
			}

			entries := ProjectInstallments([]models.Transaction{tx})
			if len(entries) != n {
				t.Fatalf("amount %v n %d: got %d entries", amount, n, len(entries))
			}

			var sum float64
			for _, e := range entries {
				sum += e.Amount
			}
			if math.Abs(sum-amount) > float64(n)*0.005+1e-9 {
				t.Errorf("amount %v n %d: projected sum %v drifts more than %v", amount, n, sum, float64(n)*0.005)
			}
		}
	}
}

func TestProjectInstallmentsPassesThroughRegularRows(t *testing.T) {
	regular := models.Transaction{
		Id:          primitive.NewObjectID(),
		Type:        "INCOME",
		Amount:      2500.00,
		Date:        time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description: "Salário",
	}
	single := models.Transaction{
		Id:                primitive.NewObjectID(),
		Type:              "EXPENSE",
		Amount:            40.00,
		Date:              time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		Description:       "Mercado",
		IsInstallment:     true,
		TotalInstallments: 1, // N=1 is not a real installment sale
	}

	entries := ProjectInstallments([]models.Transaction{regular, single})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Id != regular.Id.Hex() || entries[0].Amount != 2500.00 {
		t.Errorf("regular row was not passed through unchanged: %+v", entries[0])
	}
	if entries[1].Id != single.Id.Hex() || entries[1].InstallmentIndex != 0 {
		t.Errorf("N=1 row should pass through unprojected: %+v", entries[1])
	}
}

func TestProjectInstallmentsClampsMonthEndDates(t *testing.T) {
	tx := models.Transaction{
		Id:                primitive.NewObjectID(),
		Type:              "EXPENSE",
		Amount:            300.00,
		Date:              time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Description:       "Sofá",
		IsInstallment:     true,
		TotalInstallments: 3,
	}

	entries := ProjectInstallments([]models.Transaction{tx})

	want := []time.Time{
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	for k, e := range entries {
		if !e.Date.Equal(want[k]) {
			t.Errorf("projection %d date = %v, want %v", k, e.Date, want[k])
		}
	}
}
