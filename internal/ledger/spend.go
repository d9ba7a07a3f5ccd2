package ledger

import (
	"context"
	"log/slog"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
)

// CurrentPeriod derives the member's budget period for today.
// It is recomputed on every call and never stored.
func (l *Ledger) CurrentPeriod(ctx context.Context, memberID string) (models.BudgetPeriod, error) {
	m, err := l.member(ctx, memberID)
	if err != nil {
		return models.BudgetPeriod{}, err
	}
	return calculator.ComputePeriod(m.PaydayDay, l.now())
}

// RefreshSpend recomputes the member's spend for the current period and
// replaces the stored totals.
func (l *Ledger) RefreshSpend(ctx context.Context, memberID string) (calculator.SpendTotals, error) {
	m, err := l.member(ctx, memberID)
	if err != nil {
		return calculator.SpendTotals{}, err
	}

	var totals calculator.SpendTotals
	if err := l.apply(ctx, "RefreshSpend", storage.NewBatch(l.recomputeSpend(m.ID, &totals))); err != nil {
		return calculator.SpendTotals{}, err
	}
	return totals, nil
}

// SetPayday changes the member's payday and recomputes spend for the period
// it implies, in one batch.
func (l *Ledger) SetPayday(ctx context.Context, memberID string, paydayDay int) (models.BudgetPeriod, error) {
	if err := models.ValidatePayday(paydayDay); err != nil {
		return models.BudgetPeriod{}, err
	}
	m, err := l.member(ctx, memberID)
	if err != nil {
		return models.BudgetPeriod{}, err
	}

	batch := storage.NewBatch(
		storage.SetPayday{MemberID: m.ID, PaydayDay: paydayDay},
		l.recomputeSpend(m.ID, nil),
	)
	if err := l.apply(ctx, "SetPayday", batch); err != nil {
		return models.BudgetPeriod{}, err
	}

	slog.Info("Payday changed", "member_id", m.ID, "from", m.PaydayDay, "to", paydayDay)
	return calculator.ComputePeriod(paydayDay, l.now())
}

// recomputeSpend returns the op that replaces the member's stored spend.
// It reads its inputs inside the batch, so it must come after every op
// that changes the member's transactions or payday.
func (l *Ledger) recomputeSpend(memberID string, totals *calculator.SpendTotals) storage.Op {
	return storage.RecomputeSpend{MemberID: memberID, Today: l.now(), Totals: totals}
}
