package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmynk/paycycle/internal/models"
)

const splitColumns = "id, transaction_id, ower_id, owed_to_id, amount, is_paid, created_at"

func scanSplits(rows *sql.Rows) ([]*models.SharedExpenseSplit, error) {
	defer rows.Close()

	var splits []*models.SharedExpenseSplit
	for rows.Next() {
		sp := &models.SharedExpenseSplit{}
		if err := rows.Scan(&sp.ID, &sp.TransactionID, &sp.OwerUserID, &sp.OwedToUserID,
			&sp.SplitAmount, &sp.IsPaid, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

// GetSplitsByIDs retrieves multiple splits by their IDs.
// Returns a map of split ID to split. Splits that don't exist are omitted.
func (s *SQLiteStore) GetSplitsByIDs(ctx context.Context, splitIDs []string) (map[string]*models.SharedExpenseSplit, error) {
	result := make(map[string]*models.SharedExpenseSplit, len(splitIDs))
	if len(splitIDs) == 0 {
		return result, nil
	}

	args := make([]any, len(splitIDs))
	for i, id := range splitIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+splitColumns+" FROM shared_expense_splits WHERE id IN ("+placeholders(len(splitIDs))+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits by IDs: %w", err)
	}
	splits, err := scanSplits(rows)
	if err != nil {
		return nil, err
	}
	for _, sp := range splits {
		result[sp.ID] = sp
	}
	return result, nil
}

// ListSplitsByTransaction retrieves the splits of one transaction.
func (s *SQLiteStore) ListSplitsByTransaction(ctx context.Context, transactionID string) ([]*models.SharedExpenseSplit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+splitColumns+" FROM shared_expense_splits WHERE transaction_id = ? ORDER BY created_at, id",
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits by transaction: %w", err)
	}
	return scanSplits(rows)
}

// ListUnpaidSplitsBetween retrieves unpaid splits between two members in either direction, oldest first.
func (s *SQLiteStore) ListUnpaidSplitsBetween(ctx context.Context, memberA, memberB string) ([]*models.SharedExpenseSplit, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+splitColumns+` FROM shared_expense_splits
		 WHERE is_paid = 0
		   AND ((ower_id = ? AND owed_to_id = ?) OR (ower_id = ? AND owed_to_id = ?))
		 ORDER BY created_at, id`,
		memberA, memberB, memberB, memberA,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid splits: %w", err)
	}
	return scanSplits(rows)
}

// placeholders returns "?, ?, ..." with n placeholders.
// Used for building IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
