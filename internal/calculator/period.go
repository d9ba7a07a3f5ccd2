// Package calculator holds the pure computations of paycycle: budget
// periods, spend totals, shared-expense debt and split shares.
// Nothing in this package performs I/O or keeps state.
package calculator

import (
	"time"

	"github.com/mmynk/paycycle/internal/models"
)

// daysInMonth returns the number of days in the given month.
// Month values outside 1..12 are normalized with year carry.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// effectivePayday clamps payday to the month's length.
// PaydayLastDay always resolves to the month's last day.
func effectivePayday(payday, year int, month time.Month) int {
	last := daysInMonth(year, month)
	if payday == models.PaydayLastDay || payday > last {
		return last
	}
	return payday
}

// paydayIn returns the payday date for the month offset months away from (year, month).
func paydayIn(payday, year int, month time.Month, offset int) time.Time {
	first := time.Date(year, month+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	day := effectivePayday(payday, first.Year(), first.Month())
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// ComputePeriod returns the budget period containing today for the given payday.
//
// A payday falling on today starts a new period. The period ends the day
// before the next effective payday, so clamped short months shift dates
// without changing what a cycle is.
func ComputePeriod(paydayDay int, today time.Time) (models.BudgetPeriod, error) {
	if err := models.ValidatePayday(paydayDay); err != nil {
		return models.BudgetPeriod{}, err
	}

	t := models.Day(today)
	year, month := t.Year(), t.Month()

	var start, next time.Time
	if t.Day() >= effectivePayday(paydayDay, year, month) {
		start = paydayIn(paydayDay, year, month, 0)
		next = paydayIn(paydayDay, year, month, 1)
	} else {
		start = paydayIn(paydayDay, year, month, -1)
		next = paydayIn(paydayDay, year, month, 0)
	}
	end := next.AddDate(0, 0, -1)

	remaining := int(end.Sub(t).Hours() / 24)
	if remaining < 0 {
		remaining = 0
	}

	return models.BudgetPeriod{
		Start:         start,
		End:           end,
		DaysRemaining: remaining,
		ResetsOn:      next,
	}, nil
}
