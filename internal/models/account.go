package models

import "github.com/shopspring/decimal"

// Account is a balance owned by exactly one member.
// Balance is mutated only by transaction postings and settlements.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string

	// OwnerUserID is the member who owns this account.
	OwnerUserID string

	// Name is a label such as "Checking" or "Joint card".
	Name string

	// Balance is the signed current balance.
	Balance decimal.Decimal

	// IsExcludedFromBudget removes the account's transactions from spend totals.
	IsExcludedFromBudget bool

	// IsDefault marks the member's designated account, which settlements
	// debit and credit. A member has at most one.
	IsDefault bool

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
