package helpers

import (
	"testing"
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
)

func TestRecurringOccurrencesMonthly(t *testing.T) {
	rt := &models.RecurringTransaction{
		Frequency:  "MONTHLY",
		DayOfMonth: 31,
		StartDate:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		Active:     true,
	}

	got := RecurringOccurrences(rt, 2024, time.April)
	if len(got) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(got))
	}
	want := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	if !got[0].Equal(want) {
		t.Errorf("occurrence = %v, want %v (day clamped)", got[0], want)
	}
}

func TestRecurringOccurrencesWeekly(t *testing.T) {
	rt := &models.RecurringTransaction{
		Frequency: "WEEKLY",
		Weekday:   int(time.Monday),
		StartDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	got := RecurringOccurrences(rt, 2024, time.June)
	if len(got) != 4 {
		t.Fatalf("June 2024 has 4 Mondays, got %d occurrences", len(got))
	}
	for _, d := range got {
		if d.Weekday() != time.Monday {
			t.Errorf("occurrence %v is not a Monday", d)
		}
	}
}

func TestRecurringOccurrencesRespectsBounds(t *testing.T) {
	end := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	rt := &models.RecurringTransaction{
		Frequency:  "MONTHLY",
		DayOfMonth: 20,
		StartDate:  time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    &end,
		Active:     true,
	}

	if got := RecurringOccurrences(rt, 2024, time.March); len(got) != 0 {
		t.Errorf("occurrence after end date should be dropped, got %v", got)
	}
	if got := RecurringOccurrences(rt, 2023, time.December); len(got) != 0 {
		t.Errorf("occurrence before start date should be dropped, got %v", got)
	}
	if got := RecurringOccurrences(rt, 2024, time.February); len(got) != 1 {
		t.Errorf("expected one occurrence in February, got %v", got)
	}

	rt.Active = false
	if got := RecurringOccurrences(rt, 2024, time.February); got != nil {
		t.Errorf("inactive rule must not produce occurrences, got %v", got)
	}
}
