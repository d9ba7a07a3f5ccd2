package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/paycycle/internal/models"
)

const accountColumns = "id, owner_id, name, balance, excluded_from_budget, is_default, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.OwnerUserID, &a.Name, &a.Balance, &a.IsExcludedFromBudget, &a.IsDefault, &a.CreatedAt)
	return a, err
}

// GetAccount retrieves an account by ID.
func (s *SQLiteStore) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	a, err := scanAccount(s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = ?", accountID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", models.ErrAccountNotFound, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// GetDefaultAccount retrieves the member's designated account.
func (s *SQLiteStore) GetDefaultAccount(ctx context.Context, ownerID string) (*models.Account, error) {
	a, err := scanAccount(s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE owner_id = ? AND is_default = 1", ownerID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no designated account for member %s", models.ErrAccountNotFound, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default account: %w", err)
	}
	return a, nil
}

// ListAccountsByOwner retrieves all accounts owned by a member.
func (s *SQLiteStore) ListAccountsByOwner(ctx context.Context, ownerID string) ([]*models.Account, error) {
	return listAccounts(ctx, s.db, ownerID)
}

func listAccounts(ctx context.Context, q querier, ownerID string) ([]*models.Account, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE owner_id = ? ORDER BY created_at, id", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}
