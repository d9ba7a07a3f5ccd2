// Package api defines the messages of the paycycle.v1.LedgerService RPCs.
//
// Dates are YYYY-MM-DD strings. Amounts are decimals encoded as JSON strings.
package api

import "github.com/shopspring/decimal"

// Period is a member's budget period.
type Period struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	DaysRemaining int    `json:"days_remaining"`
	ResetsOn      string `json:"resets_on"`
}

type ComputePeriodRequest struct {
	PaydayDay int `json:"payday_day"`
	// Today defaults to the server's current date.
	Today string `json:"today,omitempty"`
}

type ComputePeriodResponse struct {
	Period Period `json:"period"`
}

type GetCurrentPeriodRequest struct {
	// MemberID defaults to the viewer. Must be in the viewer's household.
	MemberID string `json:"member_id,omitempty"`
}

type GetCurrentPeriodResponse struct {
	Period Period `json:"period"`
}

type SetPaydayRequest struct {
	PaydayDay int `json:"payday_day"`
}

type SetPaydayResponse struct {
	Period Period `json:"period"`
}

type CategorySpend struct {
	CategoryID    string          `json:"category_id"`
	CategoryGroup string          `json:"category_group"`
	Allocated     decimal.Decimal `json:"allocated"`
	Spent         decimal.Decimal `json:"spent"`
}

type GroupSpend struct {
	Group     string          `json:"group"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
}

type Spend struct {
	PeriodStart    string          `json:"period_start"`
	PeriodEnd      string          `json:"period_end"`
	Categories     []CategorySpend `json:"categories"`
	Groups         []GroupSpend    `json:"groups"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Unbudgeted     decimal.Decimal `json:"unbudgeted"`
}

type RefreshSpendRequest struct{}

type RefreshSpendResponse struct {
	Spend Spend `json:"spend"`
}

// DebtEntry is the viewer's signed share of one unpaid split.
// Positive means the viewer owes it.
type DebtEntry struct {
	SplitID       string          `json:"split_id"`
	TransactionID string          `json:"transaction_id"`
	YourShare     decimal.Decimal `json:"your_share"`
}

type Debt struct {
	PartnerID       string          `json:"partner_id"`
	Entries         []DebtEntry     `json:"entries"`
	TotalYouOwe     decimal.Decimal `json:"total_you_owe"`
	TotalYouAreOwed decimal.Decimal `json:"total_you_are_owed"`
	NetDebt         decimal.Decimal `json:"net_debt"`
	HasUnsettled    bool            `json:"has_unsettled"`
}

type ComputeDebtRequest struct {
	PartnerID string `json:"partner_id"`
}

type ComputeDebtResponse struct {
	Debt Debt `json:"debt"`
}

type GetHouseholdDebtRequest struct{}

type GetHouseholdDebtResponse struct {
	// Debt is null when the viewer has no single active partner.
	Debt *Debt `json:"debt"`
}

type Settlement struct {
	ID              string          `json:"id"`
	HouseholdID     string          `json:"household_id"`
	PayerID         string          `json:"payer_id"`
	ReceiverID      string          `json:"receiver_id"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"category_id"`
	CoveredSplitIDs []string        `json:"covered_split_ids"`
	CreatedAt       int64           `json:"created_at"`
}

// RecordSettlementRequest records a payment. The viewer must be the payer
// or the receiver.
type RecordSettlementRequest struct {
	PayerID         string          `json:"payer_id"`
	ReceiverID      string          `json:"receiver_id"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"category_id"`
	CoveredSplitIDs []string        `json:"covered_split_ids"`
}

type RecordSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type SettleUpRequest struct {
	CategoryID string `json:"category_id"`
}

type SettleUpResponse struct {
	Settlement Settlement `json:"settlement"`
}

type ListSettlementsRequest struct{}

type ListSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
}

type Transaction struct {
	ID          string          `json:"id"`
	MemberID    string          `json:"member_id"`
	AccountID   string          `json:"account_id"`
	CategoryID  string          `json:"category_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

type Split struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	OwerID        string          `json:"ower_id"`
	OwedToID      string          `json:"owed_to_id"`
	Amount        decimal.Decimal `json:"amount"`
	IsPaid        bool            `json:"is_paid"`
}

// PostTransactionRequest posts a transaction for the viewer.
type PostTransactionRequest struct {
	AccountID   string          `json:"account_id,omitempty"`
	CategoryID  string          `json:"category_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`

	// SharedWith is the member who owes part of the expense.
	SharedWith   string          `json:"shared_with,omitempty"`
	SplitAmount  decimal.Decimal `json:"split_amount"`
	SharePercent decimal.Decimal `json:"share_percent"`
}

type PostTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
	Split       *Split      `json:"split,omitempty"`
	Spend       Spend       `json:"spend"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type DeleteTransactionResponse struct{}
