package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// TransactionType classifies how a transaction affects balance and spend.
type TransactionType string

const (
	// TransactionExpense debits the account and adds to category spend.
	TransactionExpense TransactionType = "expense"
	// TransactionRefund credits the account and reduces category spend.
	TransactionRefund TransactionType = "refund"
	// TransactionIncome credits the account and never touches category spend.
	TransactionIncome TransactionType = "income"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionExpense, TransactionRefund, TransactionIncome:
		return true
	}
	return false
}

// Transaction is a posting against one member's account.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// MemberID is the member who made (and paid for) the transaction.
	MemberID string

	// AccountID is the account the transaction is posted to.
	AccountID string

	// CategoryID is the budget category. Empty for uncategorized postings.
	CategoryID string

	// Type decides the sign of the balance and spend effect.
	Type TransactionType

	// Amount is the magnitude of the posting. Always positive.
	Amount decimal.Decimal

	// Date is the calendar date of the transaction (UTC midnight).
	Date time.Time

	// Description is free text (e.g., "Rent", "Groceries").
	Description string

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64
}

// BalanceEffect returns the signed change the transaction applies to its account.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, Validationf("invalid date %q: %v", s, err)
	}
	return d, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// String implements fmt.Stringer for log output.
func (t *Transaction) String() string {
	return fmt.Sprintf("%s %s %s on %s", t.Type, t.Amount.StringFixed(2), t.CategoryID, FormatDate(t.Date))
}
