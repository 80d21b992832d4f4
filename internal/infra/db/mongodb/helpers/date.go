package helpers

import "time"

// AddMonthsClamped advances a date by the given number of calendar months,
// clamping the day-of-month to the last day of shorter months instead of
// letting time.AddDate roll into the following month (Jan 31 + 1 month is
// Feb 28/29, not Mar 2/3).
func AddMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	first := time.Date(year, month, 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	shifted := first.AddDate(0, months, 0)

	last := LastDayOfMonth(shifted.Year(), shifted.Month())
	if day > last {
		day = last
	}

	return time.Date(shifted.Year(), shifted.Month(), day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDayOfMonth builds a date in the given month with the day clamped to
// the month's length.
func ClampDayOfMonth(year int, month time.Month, day int) time.Time {
	last := LastDayOfMonth(year, month)
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func MonthsBetween(date time.Time, filterYear int, filterMonth int) int {
	yearDiff := filterYear - date.Year()
	monthDiff := filterMonth - int(date.Month())
	totalMonths := yearDiff*12 + monthDiff
	if totalMonths < 0 {
		return 0
	}
	return totalMonths
}
