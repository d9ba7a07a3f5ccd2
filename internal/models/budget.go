package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is a member's current budget window.
// It is derived from the payday and today's date and never persisted.
type BudgetPeriod struct {
	// Start is the first day of the period (the effective payday).
	Start time.Time

	// End is the last day of the period, one day before the next payday.
	End time.Time

	// DaysRemaining is the number of whole days from today to End. Never negative.
	DaysRemaining int

	// ResetsOn is the next payday, End + 1 day.
	ResetsOn time.Time
}

// Contains reports whether day falls within [Start, End].
func (p BudgetPeriod) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(p.Start) && !d.After(p.End)
}

// CategoryBudget is a member's allocation for one category.
// Spent is fully recalculated, never incremented.
type CategoryBudget struct {
	// ID is the unique identifier for the budget row (UUID format).
	ID string

	// MemberID is the member whose period this budget applies to.
	MemberID string

	// CategoryID is the category (e.g., "groceries").
	CategoryID string

	// CategoryGroup is the group the category rolls up into (e.g., "Living").
	CategoryGroup string

	// Allocated is the planned amount for the period. Never negative.
	Allocated decimal.Decimal

	// Spent is the recomputed spend for the current period. Never negative.
	Spent decimal.Decimal
}

// BudgetSummary holds a member's overall totals for the current period.
type BudgetSummary struct {
	MemberID       string
	TotalAllocated decimal.Decimal
	TotalSpent     decimal.Decimal
	UpdatedAt      int64
}
