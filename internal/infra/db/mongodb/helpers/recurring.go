package helpers

import (
	"time"

	"github.com/controlenamao/finance-backend/internal/domain/models"
)

// RecurringOccurrences lists the dates a recurring transaction falls due
// inside the given month, honoring the start date, the optional end date and
// the active flag.
func RecurringOccurrences(rt *models.RecurringTransaction, year int, month time.Month) []time.Time {
	if !rt.Active {
		return nil
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)

	if rt.StartDate.After(monthEnd) {
		return nil
	}
	if rt.EndDate != nil && rt.EndDate.Before(monthStart) {
		return nil
	}

	inRange := func(d time.Time) bool {
		if d.Before(rt.StartDate) {
			return false
		}
		if rt.EndDate != nil && d.After(*rt.EndDate) {
			return false
		}
		return true
	}

	var occurrences []time.Time
	switch rt.Frequency {
	case "MONTHLY":
		d := ClampDayOfMonth(year, month, rt.DayOfMonth)
		if inRange(d) {
			occurrences = append(occurrences, d)
		}
	case "YEARLY":
		if rt.StartDate.Month() == month {
			d := ClampDayOfMonth(year, month, rt.StartDate.Day())
			if inRange(d) {
				occurrences = append(occurrences, d)
			}
		}
	case "WEEKLY":
		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			if int(d.Weekday()) == rt.Weekday && inRange(d) {
				occurrences = append(occurrences, d)
			}
		}
	}

	return occurrences
}
