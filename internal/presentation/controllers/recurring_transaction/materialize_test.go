package recurring_transaction

import (
	"testing"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
)

func TestMaterializeMonthKey(t *testing.T) {
	if got := materializeMonthKey(2024, time.June); got != "2024-06" {
		t.Errorf("expected 2024-06, got %q", got)
	}
	if got := materializeMonthKey(2024, time.December); got != "2024-12" {
		t.Errorf("expected 2024-12, got %q", got)
	}
}

func TestAlreadyMaterializedIsPerMonth(t *testing.T) {
	rule := models.RecurringTransaction{
		MaterializedMonths: []string{"2024-07"},
	}

	// A July run must not block June: the months dedupe independently.
	if alreadyMaterialized(&rule, materializeMonthKey(2024, time.June)) {
		t.Error("June must still materialize after a July run")
	}
	if !alreadyMaterialized(&rule, materializeMonthKey(2024, time.July)) {
		t.Error("July must not materialize twice")
	}
	if alreadyMaterialized(&rule, materializeMonthKey(2023, time.July)) {
		t.Error("the same month of another year must still materialize")
	}
}
