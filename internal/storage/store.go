// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/mmynk/paycycle/internal/models"
)

// Store defines the document-store operations the ledger needs: reads that
// return records matching a filter, and one atomic batch write.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger.
type Store interface {
	// GetHousehold retrieves a household by ID.
	// Returns an error wrapping models.ErrNotFound if it does not exist.
	GetHousehold(ctx context.Context, householdID string) (*models.Household, error)

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// ListMembersByHousehold returns every member of the household, active or not.
	ListMembersByHousehold(ctx context.Context, householdID string) ([]*models.Member, error)

	// GetAccount retrieves an account by ID.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// GetDefaultAccount returns the member's designated account.
	GetDefaultAccount(ctx context.Context, ownerID string) (*models.Account, error)

	// ListAccountsByOwner returns all accounts owned by the member.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]*models.Account, error)

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)

	// ListTransactionsByMember returns the member's transactions dated within [from, to].
	ListTransactionsByMember(ctx context.Context, memberID string, from, to time.Time) ([]*models.Transaction, error)

	// GetSplitsByIDs returns the splits with the given IDs. Missing IDs are omitted.
	GetSplitsByIDs(ctx context.Context, splitIDs []string) (map[string]*models.SharedExpenseSplit, error)

	// ListSplitsByTransaction returns the splits of one transaction.
	ListSplitsByTransaction(ctx context.Context, transactionID string) ([]*models.SharedExpenseSplit, error)

	// ListUnpaidSplitsBetween returns the unpaid splits between two members, oldest first.
	ListUnpaidSplitsBetween(ctx context.Context, memberA, memberB string) ([]*models.SharedExpenseSplit, error)

	// GetSettlement retrieves a settlement by ID, including covered split IDs.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// ListSettlementsByMember returns settlements the member paid or received, newest first.
	ListSettlementsByMember(ctx context.Context, memberID string) ([]*models.Settlement, error)

	// ListCategoryBudgets returns the member's category budgets.
	ListCategoryBudgets(ctx context.Context, memberID string) ([]*models.CategoryBudget, error)

	// GetBudgetSummary returns the member's stored totals.
	GetBudgetSummary(ctx context.Context, memberID string) (*models.BudgetSummary, error)

	// Apply executes every operation of the batch atomically. Either all
	// operations are committed or none are. An empty batch is a no-op.
	Apply(ctx context.Context, batch *Batch) error

	// Close releases any resources held by the store.
	Close() error
}
