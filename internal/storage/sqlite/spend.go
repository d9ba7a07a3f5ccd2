package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
)

// recomputeSpend derives the member's spend from the rows visible to tx and
// replaces the stored budget amounts and summary with it.
func recomputeSpend(ctx context.Context, tx *sql.Tx, o storage.RecomputeSpend) error {
	var paydayDay int
	err := tx.QueryRowContext(ctx, "SELECT payday_day FROM members WHERE id = ?", o.MemberID).Scan(&paydayDay)
	if err != nil {
		return noRows(err, "member %s", o.MemberID)
	}
	period, err := calculator.ComputePeriod(paydayDay, o.Today)
	if err != nil {
		return err
	}

	txs, err := listTransactions(ctx, tx, o.MemberID, period.Start, period.End)
	if err != nil {
		return err
	}
	accounts, err := listAccounts(ctx, tx, o.MemberID)
	if err != nil {
		return err
	}
	budgets, err := listCategoryBudgets(ctx, tx, o.MemberID)
	if err != nil {
		return err
	}

	totals, err := calculator.RecomputeSpend(period.Start, period.End, deref(txs), deref(accounts), deref(budgets))
	if err != nil {
		return err
	}

	for _, c := range totals.PerCategory {
		if c.BudgetID == "" {
			continue
		}
		if err := applyOp(ctx, tx, storage.SetCategorySpent{BudgetID: c.BudgetID, Spent: c.Spent}); err != nil {
			return fmt.Errorf("failed to store spend for %s: %w", c.CategoryID, err)
		}
	}
	summary := &models.BudgetSummary{
		MemberID:       o.MemberID,
		TotalAllocated: totals.TotalAllocated,
		TotalSpent:     totals.TotalSpent,
		UpdatedAt:      o.Today.Unix(),
	}
	if err := applyOp(ctx, tx, storage.PutBudgetSummary{Summary: summary}); err != nil {
		return fmt.Errorf("failed to store budget summary: %w", err)
	}

	if o.Totals != nil {
		*o.Totals = totals
	}
	return nil
}

func deref[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}
