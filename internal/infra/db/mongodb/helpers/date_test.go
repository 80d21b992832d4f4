package helpers

import (
	"testing"
	"time"
)

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		months int
		want   time.Time
	}{
		{
			name:   "regular advance keeps day",
			date:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "day 31 clamps to february 29 on leap year",
			date:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "day 31 clamps to february 28 off leap year",
			date:   time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "day 31 clamps to 30-day month",
			date:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "crosses year boundary",
			date:   time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "zero months is identity",
			date:   time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
			months: 0,
			want:   time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonthsClamped(tt.date, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonthsClamped(%v, %d) = %v, want %v", tt.date, tt.months, got, tt.want)
			}
		})
	}
}

func TestLastDayOfMonth(t *testing.T) {
	if got := LastDayOfMonth(2024, time.February); got != 29 {
		t.Errorf("LastDayOfMonth(2024, February) = %d, want 29", got)
	}
	if got := LastDayOfMonth(2023, time.February); got != 28 {
		t.Errorf("LastDayOfMonth(2023, February) = %d, want 28", got)
	}
	if got := LastDayOfMonth(2024, time.December); got != 31 {
		t.Errorf("LastDayOfMonth(2024, December) = %d, want 31", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	if got := MonthsBetween(date, 2024, 6); got != 3 {
		t.Errorf("MonthsBetween = %d, want 3", got)
	}
	if got := MonthsBetween(date, 2025, 1); got != 10 {
		t.Errorf("MonthsBetween across year = %d, want 10", got)
	}
	if got := MonthsBetween(date, 2024, 1); got != 0 {
		t.Errorf("MonthsBetween in the past = %d, want 0", got)
	}
}
