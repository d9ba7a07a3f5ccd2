package models

import "github.com/shopspring/decimal"

// SharedExpenseSplit is one member's owed share of a transaction paid by another member.
//
// Exactly one split exists per (transaction, ower). IsPaid transitions
// false to true once, only through a settlement, and never back.
type SharedExpenseSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// TransactionID is the shared transaction this split belongs to.
	// Deleting the transaction deletes the split.
	TransactionID string

	// OwerUserID is the member who owes the share.
	OwerUserID string

	// OwedToUserID is the member who paid the transaction.
	OwedToUserID string

	// SplitAmount is the owed share. Always positive.
	SplitAmount decimal.Decimal

	// IsPaid is set when a settlement covers this split.
	IsPaid bool

	// CreatedAt is the Unix timestamp when the split was created.
	CreatedAt int64
}

// Involves reports whether the split is between exactly a and b, in either direction.
func (s *SharedExpenseSplit) Involves(a, b string) bool {
	return (s.OwerUserID == a && s.OwedToUserID == b) ||
		(s.OwerUserID == b && s.OwedToUserID == a)
}

// Settlement represents a payment between household members to clear debts.
// It is immutable once created.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// HouseholdID is the household of the two members.
	HouseholdID string

	// PayerUserID is the member who paid (debtor settling up).
	PayerUserID string

	// ReceiverUserID is the member who received payment (creditor being paid).
	ReceiverUserID string

	// Amount is the payment amount. Always positive.
	Amount decimal.Decimal

	// CategoryID is the category the settlement was filed under.
	CategoryID string

	// CoveredSplitIDs are the splits this settlement marked paid.
	CoveredSplitIDs []string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
