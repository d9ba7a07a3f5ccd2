package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/models"
)

// ErrConflict is returned by Apply when an operation's precondition no
// longer holds, such as marking an already-paid split as paid.
var ErrConflict = errors.New("conflicting update")

// Op is a single mutation inside a Batch.
type Op interface {
	// Describe returns a short label used in error messages and logs.
	Describe() string
}

// CreateHousehold inserts a household.
type CreateHousehold struct{ Household *models.Household }

// CreateMember inserts a member.
type CreateMember struct{ Member *models.Member }

// SetPayday replaces a member's payday.
type SetPayday struct {
	MemberID  string
	PaydayDay int
}

// CreateAccount inserts an account.
type CreateAccount struct{ Account *models.Account }

// AdjustBalance adds Delta (signed) to an account's balance.
type AdjustBalance struct {
	AccountID string
	Delta     decimal.Decimal
}

// CreateTransaction inserts a transaction.
type CreateTransaction struct{ Transaction *models.Transaction }

// DeleteTransaction removes a transaction and, by cascade, its splits.
type DeleteTransaction struct{ TransactionID string }

// CreateSplit inserts a shared-expense split.
type CreateSplit struct{ Split *models.SharedExpenseSplit }

// MarkSplitPaid flips a split to paid. Fails with ErrConflict if it is already paid.
type MarkSplitPaid struct{ SplitID string }

// CreateSettlement inserts a settlement and its covered split links.
type CreateSettlement struct{ Settlement *models.Settlement }

// CreateCategoryBudget inserts a category budget.
type CreateCategoryBudget struct{ Budget *models.CategoryBudget }

// SetCategorySpent replaces (never increments) a budget's spent amount.
type SetCategorySpent struct {
	BudgetID string
	Spent    decimal.Decimal
}

// PutBudgetSummary replaces the member's summary record.
type PutBudgetSummary struct{ Summary *models.BudgetSummary }

// RecomputeSpend recalculates the member's spend for the period containing
// Today from the rows visible to the batch, then replaces every budget's
// spent amount and the summary record. Earlier ops in the same batch are
// taken into account, including a SetPayday on the same member.
//
// When Totals is non-nil it receives the computed totals.
type RecomputeSpend struct {
	MemberID string
	Today    time.Time
	Totals   *calculator.SpendTotals
}

func (o CreateHousehold) Describe() string { return "create household " + o.Household.ID }
func (o CreateMember) Describe() string    { return "create member " + o.Member.ID }
func (o SetPayday) Describe() string       { return fmt.Sprintf("set payday %d on %s", o.PaydayDay, o.MemberID) }
func (o CreateAccount) Describe() string   { return "create account " + o.Account.ID }
func (o AdjustBalance) Describe() string {
	return fmt.Sprintf("adjust balance of %s by %s", o.AccountID, o.Delta.StringFixed(2))
}
func (o CreateTransaction) Describe() string    { return "create transaction " + o.Transaction.ID }
func (o DeleteTransaction) Describe() string    { return "delete transaction " + o.TransactionID }
func (o CreateSplit) Describe() string          { return "create split " + o.Split.ID }
func (o MarkSplitPaid) Describe() string        { return "mark split paid " + o.SplitID }
func (o CreateSettlement) Describe() string     { return "create settlement " + o.Settlement.ID }
func (o CreateCategoryBudget) Describe() string { return "create category budget " + o.Budget.ID }
func (o SetCategorySpent) Describe() string     { return "set spent on " + o.BudgetID }
func (o PutBudgetSummary) Describe() string     { return "put budget summary " + o.Summary.MemberID }
func (o RecomputeSpend) Describe() string       { return "recompute spend for " + o.MemberID }

// Batch is an ordered list of mutations for one logical operation.
type Batch struct {
	ops []Op
}

// NewBatch returns a batch holding ops.
func NewBatch(ops ...Op) *Batch {
	return &Batch{ops: ops}
}

// Add appends ops to the batch and returns it for chaining.
func (b *Batch) Add(ops ...Op) *Batch {
	b.ops = append(b.ops, ops...)
	return b
}

// Ops returns the operations in submission order.
func (b *Batch) Ops() []Op {
	if b == nil {
		return nil
	}
	return b.ops
}

// Len returns the number of operations.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ops)
}
