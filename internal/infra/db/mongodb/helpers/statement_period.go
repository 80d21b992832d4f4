package helpers

import "time"

// StatementPeriod is one billing cycle of a credit card: the half-open day
// interval (previous closing day, closing day], realized as the closed range
// [Start, End] on whole days. Start is the day after the previous month's
// closing day, End is the reference month's closing day, both clamped to
// months shorter than the closing day.
type StatementPeriod struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	DueDate time.Time `json:"dueDate"`
}

// ComputeStatementPeriod derives the billing cycle of the reference month
// for a card that closes on closeDay and is due on dueDay.
//
// The due date is the first occurrence of dueDay strictly after the cycle
// closes: same month when dueDay > closeDay, next month otherwise.
func ComputeStatementPeriod(closeDay int, dueDay int, refYear int, refMonth time.Month) StatementPeriod {
	end := ClampDayOfMonth(refYear, refMonth, closeDay)

	prev := end.AddDate(0, 0, -end.Day()) // last day of the previous month
	prevClose := ClampDayOfMonth(prev.Year(), prev.Month(), closeDay)
	start := prevClose.AddDate(0, 0, 1)

	var due time.Time
	if dueDay > closeDay {
		due = ClampDayOfMonth(refYear, refMonth, dueDay)
	} else {
		next := end.AddDate(0, 1, -end.Day()+1) // first day of the next month
		due = ClampDayOfMonth(next.Year(), next.Month(), dueDay)
	}

	return StatementPeriod{Start: start, End: end, DueDate: due}
}

// Contains reports whether a transaction date falls inside the cycle. The
// comparison happens on whole days so entries timestamped anywhere on the
// boundary days count.
func (p StatementPeriod) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start) && !d.After(p.End)
}
