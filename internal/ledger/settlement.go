package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/events"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
)

// SettlementRequest names who pays whom and which splits the payment covers.
type SettlementRequest struct {
	PayerID         string
	ReceiverID      string
	Amount          decimal.Decimal
	CategoryID      string
	CoveredSplitIDs []string
}

func (r SettlementRequest) validate() error {
	if r.PayerID == "" || r.ReceiverID == "" {
		return models.Validationf("payer and receiver are required")
	}
	if r.PayerID == r.ReceiverID {
		return models.Validationf("payer and receiver must differ")
	}
	if !r.Amount.IsPositive() {
		return models.Validationf("amount must be positive")
	}
	if len(r.CoveredSplitIDs) == 0 {
		return models.Validationf("at least one covered split is required")
	}
	seen := make(map[string]bool, len(r.CoveredSplitIDs))
	for _, id := range r.CoveredSplitIDs {
		if seen[id] {
			return models.Validationf("split %s listed twice", id)
		}
		seen[id] = true
	}
	return nil
}

// RecordSettlement moves Amount from the payer's default account to the
// receiver's, marks every covered split paid and stores the receipt, all in
// one batch.
//
// The covered splits must be unpaid and between payer and receiver. Splits
// the payer owes count positive, splits the receiver owes count negative, and
// the signed total must match Amount within calculator.RoundingTolerance.
// Retrying a committed settlement fails with ErrValidation because its splits
// are already paid.
func (l *Ledger) RecordSettlement(ctx context.Context, req SettlementRequest) (*models.Settlement, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	payer, err := l.store.GetMember(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	receiver, err := l.store.GetMember(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if payer.HouseholdID != receiver.HouseholdID {
		return nil, models.Validationf("payer and receiver are in different households")
	}

	splits, err := l.store.GetSplitsByIDs(ctx, req.CoveredSplitIDs)
	if err != nil {
		return nil, err
	}
	covered := decimal.Zero
	for _, id := range req.CoveredSplitIDs {
		s, ok := splits[id]
		switch {
		case !ok:
			return nil, models.NotFoundf("split %s", id)
		case s.IsPaid:
			return nil, models.Validationf("split %s is already paid", id)
		case !s.Involves(payer.ID, receiver.ID):
			return nil, models.Validationf("split %s is not between payer and receiver", id)
		case s.OwerUserID == payer.ID:
			covered = covered.Add(s.SplitAmount)
		default:
			covered = covered.Sub(s.SplitAmount)
		}
	}
	if !calculator.Reconciles(covered, req.Amount) {
		return nil, models.Validationf("amount %s does not match covered splits %s",
			req.Amount.StringFixed(2), covered.StringFixed(2))
	}

	payerAccount, err := l.store.GetDefaultAccount(ctx, payer.ID)
	if err != nil {
		return nil, err
	}
	receiverAccount, err := l.store.GetDefaultAccount(ctx, receiver.ID)
	if err != nil {
		return nil, err
	}

	settlement := &models.Settlement{
		ID:              uuid.New().String(),
		HouseholdID:     payer.HouseholdID,
		PayerUserID:     payer.ID,
		ReceiverUserID:  receiver.ID,
		Amount:          req.Amount,
		CategoryID:      req.CategoryID,
		CoveredSplitIDs: append([]string(nil), req.CoveredSplitIDs...),
		CreatedAt:       l.now().Unix(),
	}

	batch := storage.NewBatch(
		storage.AdjustBalance{AccountID: payerAccount.ID, Delta: req.Amount.Neg()},
		storage.AdjustBalance{AccountID: receiverAccount.ID, Delta: req.Amount},
	)
	for _, id := range settlement.CoveredSplitIDs {
		batch.Add(storage.MarkSplitPaid{SplitID: id})
	}
	batch.Add(storage.CreateSettlement{Settlement: settlement})

	if err := l.apply(ctx, "RecordSettlement", batch); err != nil {
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"payer_id", payer.ID,
		"receiver_id", receiver.ID,
		"amount", settlement.Amount.StringFixed(2),
		"splits", len(settlement.CoveredSplitIDs),
	)
	l.metrics.SettlementRecorded(settlement.Amount.InexactFloat64())
	l.publish(ctx, events.TypeSettlementRecorded, events.SettlementRecorded{
		SettlementID:    settlement.ID,
		HouseholdID:     settlement.HouseholdID,
		PayerID:         settlement.PayerUserID,
		ReceiverID:      settlement.ReceiverUserID,
		Amount:          settlement.Amount.StringFixed(2),
		CoveredSplitIDs: settlement.CoveredSplitIDs,
	})

	return settlement, nil
}

// SettleUp settles the whole net balance between the viewer and their
// household partner. The net debtor pays and every unpaid split is covered.
func (l *Ledger) SettleUp(ctx context.Context, householdID, viewerID, categoryID string) (*models.Settlement, error) {
	debt, err := l.CalculateHouseholdDebt(ctx, householdID, viewerID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, models.Validationf("household %s has no single partner to settle with", householdID)
	}
	if !debt.Summary.HasUnsettled() {
		return nil, models.Validationf("no unsettled expenses")
	}
	if debt.Summary.NetDebt.IsZero() {
		return nil, models.Validationf("balance is already even")
	}

	req := SettlementRequest{
		PayerID:         viewerID,
		ReceiverID:      debt.Partner.ID,
		Amount:          debt.Summary.NetDebt,
		CategoryID:      categoryID,
		CoveredSplitIDs: debt.Summary.SplitIDs(),
	}
	if debt.Summary.NetDebt.IsNegative() {
		req.PayerID, req.ReceiverID = debt.Partner.ID, viewerID
		req.Amount = debt.Summary.NetDebt.Neg()
	}
	return l.RecordSettlement(ctx, req)
}

// ListSettlements returns the settlements the member paid or received, newest first.
func (l *Ledger) ListSettlements(ctx context.Context, memberID string) ([]*models.Settlement, error) {
	if _, err := l.member(ctx, memberID); err != nil {
		return nil, err
	}
	return l.store.ListSettlementsByMember(ctx, memberID)
}
