package helpers

import (
	"testing"
	"time"
)

func TestComputeStatementPeriodJune2024(t *testing.T) {
	// Card closing on the 20th, viewing June 2024: the cycle runs from
	// 21 May through 20 June.
	period := ComputeStatementPeriod(20, 28, 2024, time.June)

	wantStart := time.Date(2024, time.May, 21, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)
	wantDue := time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)

	if !period.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", period.Start, wantStart)
	}
	if !period.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", period.End, wantEnd)
	}
	if !period.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %v", period.DueDate, wantDue)
	}
}

func TestComputeStatementPeriodDueNextMonth(t *testing.T) {
	// Due day at or before the closing day belongs to the following month.
	period := ComputeStatementPeriod(25, 5, 2024, time.June)

	wantDue := time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC)
	if !period.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %v", period.DueDate, wantDue)
	}
}

func TestComputeStatementPeriodClampsShortMonths(t *testing.T) {
	// Closing day 31 viewed in March: the previous closing clamps to
	// 29 Feb 2024, so the cycle starts on 1 March.
	period := ComputeStatementPeriod(31, 10, 2024, time.March)

	wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	if !period.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", period.Start, wantStart)
	}
	if !period.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", period.End, wantEnd)
	}
}

func TestStatementPeriodsAreContiguous(t *testing.T) {
	// For every closing day 1..28 consecutive reference months produce
	// windows that touch without overlapping: one window's end is exactly
	// the day before the next window's start.
	for closeDay := 1; closeDay <= 28; closeDay++ {
		ref := time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 15; i++ {
			current := ComputeStatementPeriod(closeDay, 10, ref.Year(), ref.Month())
			nextRef := ref.AddDate(0, 1, 0)
			next := ComputeStatementPeriod(closeDay, 10, nextRef.Year(), nextRef.Month())

			if !current.End.AddDate(0, 0, 1).Equal(next.Start) {
				t.Fatalf("closeDay %d, %v: window end %v does not abut next start %v",
					closeDay, ref.Month(), current.End, next.Start)
			}
			if next.Contains(current.End) {
				t.Fatalf("closeDay %d: windows overlap on %v", closeDay, current.End)
			}
			if !current.Contains(current.End) || !current.Contains(current.Start) {
				t.Fatalf("closeDay %d: window must include both its boundary days", closeDay)
			}
			ref = nextRef
		}
	}
}

func TestStatementPeriodContainsUsesWholeDays(t *testing.T) {
	period := ComputeStatementPeriod(20, 28, 2024, time.June)

	late := time.Date(2024, time.June, 20, 23, 30, 0, 0, time.UTC)
	if !period.Contains(late) {
		t.Error("a transaction late on the closing day belongs to the cycle")
	}
	dayAfter := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	if period.Contains(dayAfter) {
		t.Error("the day after closing belongs to the next cycle")
	}
	dayBefore := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
	if period.Contains(dayBefore) {
		t.Error("the previous closing day belongs to the previous cycle")
	}
}
