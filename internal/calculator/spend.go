package calculator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/models"
)

// CategorySpend is one category's recomputed totals.
type CategorySpend struct {
	BudgetID      string
	CategoryID    string
	CategoryGroup string
	Allocated     decimal.Decimal
	Spent         decimal.Decimal
}

// GroupSpend rolls up the categories of one category group.
type GroupSpend struct {
	Group      string
	Allocated  decimal.Decimal
	Spent      decimal.Decimal
	Categories int
}

// SpendTotals is the output of RecomputeSpend.
type SpendTotals struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	// PerCategory is sorted by CategoryID.
	PerCategory []CategorySpend

	// PerGroup is sorted by Group.
	PerGroup []GroupSpend

	TotalAllocated decimal.Decimal
	TotalSpent     decimal.Decimal

	// Unbudgeted is the net spend on categories that have no budget row.
	Unbudgeted decimal.Decimal
}

// RecomputeSpend derives per-category and per-group spend for [periodStart, periodEnd].
//
// A transaction counts iff its date falls within the window (inclusive) and
// its account is not excluded from the budget. Expenses add, refunds
// subtract, income is ignored. Each category's spend is clamped to zero.
// The result depends only on the inputs: existing Spent values on budgets are
// never read, and the ordering of transactions does not matter.
func RecomputeSpend(
	periodStart, periodEnd time.Time,
	transactions []models.Transaction,
	accounts []models.Account,
	budgets []models.CategoryBudget,
) (SpendTotals, error) {
	start, end := models.Day(periodStart), models.Day(periodEnd)
	if start.After(end) {
		return SpendTotals{}, models.Validationf("period start %s is after end %s",
			models.FormatDate(start), models.FormatDate(end))
	}

	excluded := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		excluded[a.ID] = a.IsExcludedFromBudget
	}

	net := make(map[string]decimal.Decimal)
	for i := range transactions {
		tx := &transactions[i]
		if tx.CategoryID == "" || excluded[tx.AccountID] {
			continue
		}
		day := models.Day(tx.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		switch tx.Type {
		case models.TransactionExpense:
			net[tx.CategoryID] = net[tx.CategoryID].Add(tx.Amount.Abs())
		case models.TransactionRefund:
			net[tx.CategoryID] = net[tx.CategoryID].Sub(tx.Amount.Abs())
		}
	}

	totals := SpendTotals{
		PeriodStart:    start,
		PeriodEnd:      end,
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
		Unbudgeted:     decimal.Zero,
	}

	groups := make(map[string]*GroupSpend)
	budgeted := make(map[string]bool, len(budgets))
	for _, b := range budgets {
		budgeted[b.CategoryID] = true
		spent := clampZero(net[b.CategoryID])

		totals.PerCategory = append(totals.PerCategory, CategorySpend{
			BudgetID:      b.ID,
			CategoryID:    b.CategoryID,
			CategoryGroup: b.CategoryGroup,
			Allocated:     b.Allocated,
			Spent:         spent,
		})
		totals.TotalAllocated = totals.TotalAllocated.Add(b.Allocated)
		totals.TotalSpent = totals.TotalSpent.Add(spent)

		g, ok := groups[b.CategoryGroup]
		if !ok {
			g = &GroupSpend{Group: b.CategoryGroup, Allocated: decimal.Zero, Spent: decimal.Zero}
			groups[b.CategoryGroup] = g
		}
		g.Allocated = g.Allocated.Add(b.Allocated)
		g.Spent = g.Spent.Add(spent)
		g.Categories++
	}

	for category, amount := range net {
		if !budgeted[category] {
			totals.Unbudgeted = totals.Unbudgeted.Add(clampZero(amount))
		}
	}

	for _, g := range groups {
		totals.PerGroup = append(totals.PerGroup, *g)
	}
	sort.Slice(totals.PerCategory, func(i, j int) bool {
		return totals.PerCategory[i].CategoryID < totals.PerCategory[j].CategoryID
	})
	sort.Slice(totals.PerGroup, func(i, j int) bool {
		return totals.PerGroup[i].Group < totals.PerGroup[j].Group
	})

	return totals, nil
}

// Category returns the totals for categoryID, if budgeted.
func (t SpendTotals) Category(categoryID string) (CategorySpend, bool) {
	for _, c := range t.PerCategory {
		if c.CategoryID == categoryID {
			return c, true
		}
	}
	return CategorySpend{}, false
}

// Group returns the totals for a category group.
func (t SpendTotals) Group(name string) (GroupSpend, bool) {
	for _, g := range t.PerGroup {
		if g.Group == name {
			return g, true
		}
	}
	return GroupSpend{}, false
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
