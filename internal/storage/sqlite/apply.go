package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
)

// applyOp executes one batch operation against tx. Create operations
// generate IDs and timestamps when unset, like the rest of the store.
func applyOp(ctx context.Context, tx *sql.Tx, op storage.Op) error {
	now := time.Now().Unix()

	switch o := op.(type) {
	case storage.CreateHousehold:
		h := o.Household
		if h.ID == "" {
			h.ID = uuid.New().String()
		}
		if h.CreatedAt == 0 {
			h.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO households (id, name, created_at) VALUES (?, ?, ?)",
			h.ID, h.Name, h.CreatedAt,
		)
		return err

	case storage.CreateMember:
		m := o.Member
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		if m.CreatedAt == 0 {
			m.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO members (id, household_id, display_name, payday_day, active, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID, m.HouseholdID, m.DisplayName, m.PaydayDay, m.Active, m.CreatedAt,
		)
		return err

	case storage.SetPayday:
		return execOne(ctx, tx, models.NotFoundf("member %s", o.MemberID),
			"UPDATE members SET payday_day = ? WHERE id = ?", o.PaydayDay, o.MemberID)

	case storage.CreateAccount:
		a := o.Account
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		if a.CreatedAt == 0 {
			a.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (id, owner_id, name, balance, excluded_from_budget, is_default, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.OwnerUserID, a.Name, a.Balance.String(), a.IsExcludedFromBudget, a.IsDefault, a.CreatedAt,
		)
		return err

	case storage.AdjustBalance:
		// Read-modify-write in decimal; SQLite arithmetic on TEXT would go through REAL.
		var balance decimal.Decimal
		err := tx.QueryRowContext(ctx, "SELECT balance FROM accounts WHERE id = ?", o.AccountID).Scan(&balance)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: %s", models.ErrAccountNotFound, o.AccountID)
		}
		if err != nil {
			return err
		}
		return execOne(ctx, tx, fmt.Errorf("%w: %s", models.ErrAccountNotFound, o.AccountID),
			"UPDATE accounts SET balance = ? WHERE id = ?", balance.Add(o.Delta).String(), o.AccountID)

	case storage.CreateTransaction:
		t := o.Transaction
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.CreatedAt == 0 {
			t.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, member_id, account_id, category_id, type, amount, date, description, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.MemberID, t.AccountID, t.CategoryID, string(t.Type), t.Amount.String(),
			models.FormatDate(t.Date), t.Description, t.CreatedAt,
		)
		return err

	case storage.DeleteTransaction:
		return deleteTransaction(ctx, tx, o.TransactionID)

	case storage.CreateSplit:
		sp := o.Split
		if sp.ID == "" {
			sp.ID = uuid.New().String()
		}
		if sp.CreatedAt == 0 {
			sp.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO shared_expense_splits (id, transaction_id, ower_id, owed_to_id, amount, is_paid, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sp.ID, sp.TransactionID, sp.OwerUserID, sp.OwedToUserID, sp.SplitAmount.String(), sp.IsPaid, sp.CreatedAt,
		)
		return err

	case storage.MarkSplitPaid:
		return execOne(ctx, tx, fmt.Errorf("%w: split %s is missing or already paid", storage.ErrConflict, o.SplitID),
			"UPDATE shared_expense_splits SET is_paid = 1 WHERE id = ? AND is_paid = 0", o.SplitID)

	case storage.CreateSettlement:
		st := o.Settlement
		if st.ID == "" {
			st.ID = uuid.New().String()
		}
		if st.CreatedAt == 0 {
			st.CreatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO settlements (id, household_id, payer_id, receiver_id, amount, category_id, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			st.ID, st.HouseholdID, st.PayerUserID, st.ReceiverUserID, st.Amount.String(), st.CategoryID, st.CreatedAt,
		)
		if err != nil {
			return err
		}
		for _, splitID := range st.CoveredSplitIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO settlement_splits (settlement_id, split_id) VALUES (?, ?)",
				st.ID, splitID,
			); err != nil {
				return fmt.Errorf("failed to link split %s: %w", splitID, err)
			}
		}
		return nil

	case storage.CreateCategoryBudget:
		b := o.Budget
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO category_budgets (id, member_id, category_id, category_group, allocated, spent)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			b.ID, b.MemberID, b.CategoryID, b.CategoryGroup, b.Allocated.String(), b.Spent.String(),
		)
		return err

	case storage.SetCategorySpent:
		return execOne(ctx, tx, models.NotFoundf("category budget %s", o.BudgetID),
			"UPDATE category_budgets SET spent = ? WHERE id = ?", o.Spent.String(), o.BudgetID)

	case storage.PutBudgetSummary:
		sum := o.Summary
		if sum.UpdatedAt == 0 {
			sum.UpdatedAt = now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO budget_summaries (member_id, total_allocated, total_spent, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (member_id) DO UPDATE SET
			   total_allocated = excluded.total_allocated,
			   total_spent = excluded.total_spent,
			   updated_at = excluded.updated_at`,
			sum.MemberID, sum.TotalAllocated.String(), sum.TotalSpent.String(), sum.UpdatedAt,
		)
		return err

	case storage.RecomputeSpend:
		return recomputeSpend(ctx, tx, o)
	}

	return fmt.Errorf("unsupported batch operation %T", op)
}

// deleteTransaction removes the transaction unless one of its splits is
// paid. Splits go with it by cascade.
func deleteTransaction(ctx context.Context, tx *sql.Tx, id string) error {
	res, err := tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ? AND NOT EXISTS (
		   SELECT 1 FROM shared_expense_splits WHERE transaction_id = ? AND is_paid = 1)`,
		id, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM transactions WHERE id = ?)", id,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: transaction %s has a paid split", storage.ErrConflict, id)
	}
	return models.NotFoundf("transaction %s", id)
}
