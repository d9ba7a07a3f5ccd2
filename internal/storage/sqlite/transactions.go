package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/paycycle/internal/models"
)

const transactionColumns = "id, member_id, account_id, category_id, type, amount, date, description, created_at"

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	t := &models.Transaction{}
	var txType, date string
	if err := row.Scan(&t.ID, &t.MemberID, &t.AccountID, &t.CategoryID, &txType, &t.Amount,
		&date, &t.Description, &t.CreatedAt); err != nil {
		return nil, err
	}
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	t.Type = models.TransactionType(txType)
	t.Date = d
	return t, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", transactionID))
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("transaction %s", transactionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListTransactionsByMember retrieves a member's transactions dated within [from, to].
func (s *SQLiteStore) ListTransactionsByMember(ctx context.Context, memberID string, from, to time.Time) ([]*models.Transaction, error) {
	return listTransactions(ctx, s.db, memberID, from, to)
}

func listTransactions(ctx context.Context, q querier, memberID string, from, to time.Time) ([]*models.Transaction, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+transactionColumns+` FROM transactions
		 WHERE member_id = ? AND date >= ? AND date <= ?
		 ORDER BY date, created_at, id`,
		memberID, models.FormatDate(from), models.FormatDate(to),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
