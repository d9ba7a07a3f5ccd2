package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/events"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
)

// PostTransactionRequest describes a new transaction.
//
// When SharedWith is set the transaction is an expense paid by MemberID and
// SharedWith owes either SplitAmount or SharePercent of it.
type PostTransactionRequest struct {
	MemberID string
	// AccountID defaults to the member's default account.
	AccountID  string
	CategoryID string
	Type       models.TransactionType
	Amount     decimal.Decimal
	// Date defaults to today.
	Date        time.Time
	Description string

	SharedWith   string
	SplitAmount  decimal.Decimal
	SharePercent decimal.Decimal
}

// PostedTransaction is the committed result of PostTransaction.
type PostedTransaction struct {
	Transaction *models.Transaction
	// Split is nil for personal transactions.
	Split *models.SharedExpenseSplit
	Spend calculator.SpendTotals
}

// PostTransaction records the transaction, applies its balance effect,
// creates the partner's split when shared and refreshes the member's spend,
// all in one batch.
func (l *Ledger) PostTransaction(ctx context.Context, req PostTransactionRequest) (*PostedTransaction, error) {
	if !req.Type.Valid() {
		return nil, models.Validationf("unknown transaction type %q", req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, models.Validationf("amount must be positive")
	}

	m, err := l.member(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	var account *models.Account
	if req.AccountID == "" {
		account, err = l.store.GetDefaultAccount(ctx, m.ID)
	} else {
		account, err = l.store.GetAccount(ctx, req.AccountID)
	}
	if err != nil {
		return nil, err
	}
	if account.OwnerUserID != m.ID {
		return nil, models.Validationf("account %s does not belong to %s", account.ID, m.ID)
	}

	date := req.Date
	if date.IsZero() {
		date = l.now()
	}
	tx := &models.Transaction{
		ID:          uuid.New().String(),
		MemberID:    m.ID,
		AccountID:   account.ID,
		CategoryID:  req.CategoryID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        models.Day(date),
		Description: req.Description,
		CreatedAt:   l.now().Unix(),
	}

	var split *models.SharedExpenseSplit
	if req.SharedWith != "" {
		split, err = l.newSplit(ctx, m, tx, req)
		if err != nil {
			return nil, err
		}
	}

	var totals calculator.SpendTotals
	batch := storage.NewBatch(
		storage.CreateTransaction{Transaction: tx},
		storage.AdjustBalance{AccountID: account.ID, Delta: tx.BalanceEffect()},
	)
	if split != nil {
		batch.Add(storage.CreateSplit{Split: split})
	}
	batch.Add(l.recomputeSpend(m.ID, &totals))

	if err := l.apply(ctx, "PostTransaction", batch); err != nil {
		return nil, err
	}

	slog.Info("Transaction posted", "transaction", tx.String(), "shared", split != nil)
	l.metrics.TransactionPosted()
	posted := events.TransactionPosted{
		TransactionID: tx.ID,
		MemberID:      tx.MemberID,
		AccountID:     tx.AccountID,
		Type:          string(tx.Type),
		Amount:        tx.Amount.StringFixed(2),
		Date:          models.FormatDate(tx.Date),
	}
	if split != nil {
		posted.SplitID = split.ID
	}
	l.publish(ctx, events.TypeTransactionPosted, posted)

	return &PostedTransaction{Transaction: tx, Split: split, Spend: totals}, nil
}

func (l *Ledger) newSplit(ctx context.Context, payer *models.Member, tx *models.Transaction, req PostTransactionRequest) (*models.SharedExpenseSplit, error) {
	if tx.Type != models.TransactionExpense {
		return nil, models.Validationf("only expenses can be shared")
	}
	if req.SharedWith == payer.ID {
		return nil, models.Validationf("cannot share a transaction with yourself")
	}

	ower, err := l.store.GetMember(ctx, req.SharedWith)
	if err != nil {
		return nil, err
	}
	if ower.HouseholdID != payer.HouseholdID || !ower.Active {
		return nil, models.Validationf("%s is not an active member of household %s", ower.ID, payer.HouseholdID)
	}

	share := req.SplitAmount
	if share.IsZero() {
		share, err = calculator.ShareOf(tx.Amount, req.SharePercent)
	} else {
		err = calculator.ValidateShare(tx.Amount, share)
	}
	if err != nil {
		return nil, err
	}

	return &models.SharedExpenseSplit{
		ID:            uuid.New().String(),
		TransactionID: tx.ID,
		OwerUserID:    ower.ID,
		OwedToUserID:  payer.ID,
		SplitAmount:   share,
		CreatedAt:     tx.CreatedAt,
	}, nil
}

// DeleteTransaction reverses the transaction's balance effect, deletes it
// together with its splits and refreshes the member's spend.
// A transaction with a paid split cannot be deleted.
func (l *Ledger) DeleteTransaction(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return models.Validationf("transaction ID is required")
	}

	tx, err := l.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	splits, err := l.store.ListSplitsByTransaction(ctx, tx.ID)
	if err != nil {
		return err
	}
	for _, s := range splits {
		if s.IsPaid {
			return models.Validationf("transaction %s has a settled split %s", tx.ID, s.ID)
		}
	}

	// The store re-checks the paid flag inside the batch; a settlement that
	// lands after the read above fails the delete with storage.ErrConflict.
	batch := storage.NewBatch(
		storage.AdjustBalance{AccountID: tx.AccountID, Delta: tx.BalanceEffect().Neg()},
		storage.DeleteTransaction{TransactionID: tx.ID},
		l.recomputeSpend(tx.MemberID, nil),
	)

	if err := l.apply(ctx, "DeleteTransaction", batch); err != nil {
		return err
	}

	slog.Info("Transaction deleted", "transaction_id", tx.ID, "splits", len(splits))
	l.publish(ctx, events.TypeTransactionDeleted, events.TransactionDeleted{
		TransactionID: tx.ID,
		MemberID:      tx.MemberID,
	})
	return nil
}
