package ledger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/paycycle/internal/events"
	"github.com/mmynk/paycycle/internal/metrics"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
	"github.com/mmynk/paycycle/internal/storage/sqlite"
)

const (
	home    = "home"
	alex    = "alex"
	cecilia = "cecilia"
)

// today is 2026-02-08, so Alex (payday 25) is in 2026-01-25..2026-02-24.
var today = time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got}, msgAndArgs...)...)
}

type fixture struct {
	store     *sqlite.SQLiteStore
	ledger    *Ledger
	recorder  *events.Recorder
	metrics   *metrics.Metrics
	rentSplit string
	grocSplit string
}

func newStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// seed creates Alex and Cecilia with default accounts and Alex's budgets.
func seed(t *testing.T, store storage.Store) {
	t.Helper()
	err := store.Apply(context.Background(), storage.NewBatch(
		storage.CreateHousehold{Household: &models.Household{ID: home, Name: "Flat 3B"}},
		storage.CreateMember{Member: &models.Member{ID: alex, HouseholdID: home, DisplayName: "Alex", PaydayDay: 25, Active: true, CreatedAt: 1}},
		storage.CreateMember{Member: &models.Member{ID: cecilia, HouseholdID: home, DisplayName: "Cecilia", PaydayDay: models.PaydayLastDay, Active: true, CreatedAt: 2}},
		storage.CreateAccount{Account: &models.Account{ID: "alex-checking", OwnerUserID: alex, Name: "Checking", Balance: dec("3000"), IsDefault: true}},
		storage.CreateAccount{Account: &models.Account{ID: "alex-savings", OwnerUserID: alex, Name: "Savings", Balance: dec("10000"), IsExcludedFromBudget: true}},
		storage.CreateAccount{Account: &models.Account{ID: "cecilia-checking", OwnerUserID: cecilia, Name: "Checking", Balance: dec("1500"), IsDefault: true}},
		storage.CreateCategoryBudget{Budget: &models.CategoryBudget{ID: "alex-rent", MemberID: alex, CategoryID: "rent", CategoryGroup: "Living", Allocated: dec("2100"), Spent: dec("0")}},
		storage.CreateCategoryBudget{Budget: &models.CategoryBudget{ID: "alex-groceries", MemberID: alex, CategoryID: "groceries", CategoryGroup: "Living", Allocated: dec("400"), Spent: dec("0")}},
	))
	require.NoError(t, err)
}

// newFixture seeds the household and posts scenario 4: Alex paid rent and
// Cecilia owes 840; Cecilia paid groceries and Alex owes 37.92.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newStore(t)
	seed(t, store)

	f := &fixture{store: store, recorder: &events.Recorder{}, metrics: metrics.New()}
	f.ledger = New(store,
		WithClock(func() time.Time { return today }),
		WithPublisher(f.recorder),
		WithMetrics(f.metrics),
	)

	ctx := context.Background()
	rent, err := f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, CategoryID: "rent", Type: models.TransactionExpense,
		Amount: dec("2100"), Date: date(t, "2026-02-01"), Description: "Rent",
		SharedWith: cecilia, SharePercent: dec("40"),
	})
	require.NoError(t, err)
	groceries, err := f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: cecilia, CategoryID: "groceries", Type: models.TransactionExpense,
		Amount: dec("75.84"), Date: date(t, "2026-02-03"), Description: "Groceries",
		SharedWith: alex, SplitAmount: dec("37.92"),
	})
	require.NoError(t, err)

	f.rentSplit = rent.Split.ID
	f.grocSplit = groceries.Split.ID
	return f
}

func (f *fixture) balance(t *testing.T, accountID string) decimal.Decimal {
	t.Helper()
	a, err := f.store.GetAccount(context.Background(), accountID)
	require.NoError(t, err)
	return a.Balance
}

func (f *fixture) isPaid(t *testing.T, splitID string) bool {
	t.Helper()
	splits, err := f.store.GetSplitsByIDs(context.Background(), []string{splitID})
	require.NoError(t, err)
	require.Contains(t, splits, splitID)
	return splits[splitID].IsPaid
}

func TestPostTransaction_Shared(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assertDec(t, "900", f.balance(t, "alex-checking"))
	assertDec(t, "1424.16", f.balance(t, "cecilia-checking"))

	splits, err := f.store.GetSplitsByIDs(ctx, []string{f.rentSplit, f.grocSplit})
	require.NoError(t, err)
	assertDec(t, "840", splits[f.rentSplit].SplitAmount)
	assert.Equal(t, cecilia, splits[f.rentSplit].OwerUserID)
	assert.Equal(t, alex, splits[f.rentSplit].OwedToUserID)
	assertDec(t, "37.92", splits[f.grocSplit].SplitAmount)

	budgets, err := f.store.ListCategoryBudgets(ctx, alex)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, "groceries", budgets[0].CategoryID)
	assertDec(t, "0", budgets[0].Spent)
	assert.Equal(t, "rent", budgets[1].CategoryID)
	assertDec(t, "2100", budgets[1].Spent)

	summary, err := f.store.GetBudgetSummary(ctx, alex)
	require.NoError(t, err)
	assertDec(t, "2500", summary.TotalAllocated)
	assertDec(t, "2100", summary.TotalSpent)

	posted := f.recorder.OfType(events.TypeTransactionPosted)
	require.Len(t, posted, 2)
	var payload events.TransactionPosted
	require.NoError(t, posted[0].Decode(&payload))
	assert.Equal(t, f.rentSplit, payload.SplitID)
	assert.Equal(t, "2100.00", payload.Amount)
	assert.Equal(t, "2026-02-01", payload.Date)
}

func TestPostTransaction_Personal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Excluded accounts move the balance but not the budget.
	posted, err := f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, AccountID: "alex-savings", CategoryID: "groceries",
		Type: models.TransactionExpense, Amount: dec("50"),
	})
	require.NoError(t, err)
	assert.Nil(t, posted.Split)
	assert.True(t, posted.Transaction.Date.Equal(date(t, "2026-02-08")))
	assertDec(t, "9950", f.balance(t, "alex-savings"))
	g, ok := posted.Spend.Category("groceries")
	require.True(t, ok)
	assertDec(t, "0", g.Spent)

	posted, err = f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, CategoryID: "groceries", Type: models.TransactionExpense, Amount: dec("60"),
	})
	require.NoError(t, err)
	g, _ = posted.Spend.Category("groceries")
	assertDec(t, "60", g.Spent)

	posted, err = f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, CategoryID: "groceries", Type: models.TransactionRefund, Amount: dec("10"),
	})
	require.NoError(t, err)
	g, _ = posted.Spend.Category("groceries")
	assertDec(t, "50", g.Spent)
	assertDec(t, "850", f.balance(t, "alex-checking"))

	_, err = f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, Type: models.TransactionIncome, Amount: dec("4000"),
	})
	require.NoError(t, err)
	assertDec(t, "4850", f.balance(t, "alex-checking"))
}

func TestPostTransaction_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  PostTransactionRequest
		want error
	}{
		{"unknown type", PostTransactionRequest{MemberID: alex, Type: "transfer", Amount: dec("1")}, models.ErrValidation},
		{"zero amount", PostTransactionRequest{MemberID: alex, Type: models.TransactionExpense, Amount: dec("0")}, models.ErrValidation},
		{"missing member", PostTransactionRequest{MemberID: "nobody", Type: models.TransactionExpense, Amount: dec("1")}, models.ErrNotFound},
		{"foreign account", PostTransactionRequest{MemberID: alex, AccountID: "cecilia-checking", Type: models.TransactionExpense, Amount: dec("1")}, models.ErrValidation},
		{"missing account", PostTransactionRequest{MemberID: alex, AccountID: "nope", Type: models.TransactionExpense, Amount: dec("1")}, models.ErrAccountNotFound},
		{"shared income", PostTransactionRequest{MemberID: alex, Type: models.TransactionIncome, Amount: dec("10"), SharedWith: cecilia, SharePercent: dec("50")}, models.ErrValidation},
		{"shared with self", PostTransactionRequest{MemberID: alex, Type: models.TransactionExpense, Amount: dec("10"), SharedWith: alex, SharePercent: dec("50")}, models.ErrValidation},
		{"share exceeds total", PostTransactionRequest{MemberID: alex, Type: models.TransactionExpense, Amount: dec("10"), SharedWith: cecilia, SplitAmount: dec("10.01")}, models.ErrValidation},
		{"no share given", PostTransactionRequest{MemberID: alex, Type: models.TransactionExpense, Amount: dec("10"), SharedWith: cecilia}, models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.PostTransaction(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assertDec(t, "900", f.balance(t, "alex-checking"), "rejected postings must not move balances")
}

func TestCalculateHouseholdDebt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	debt, err := f.ledger.CalculateHouseholdDebt(ctx, home, alex)
	require.NoError(t, err)
	require.NotNil(t, debt)
	assert.Equal(t, cecilia, debt.Partner.ID)
	assertDec(t, "37.92", debt.Summary.TotalYouOwe)
	assertDec(t, "840", debt.Summary.TotalYouAreOwed)
	assertDec(t, "-802.08", debt.Summary.NetDebt)

	mirror, err := f.ledger.CalculateHouseholdDebt(ctx, home, cecilia)
	require.NoError(t, err)
	assertDec(t, "802.08", mirror.Summary.NetDebt)

	_, err = f.ledger.CalculateHouseholdDebt(ctx, "elsewhere", alex)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = f.ledger.ComputeDebt(ctx, alex, alex)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCalculateHouseholdDebt_NoSinglePartner(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	l := New(store, WithClock(func() time.Time { return today }))

	require.NoError(t, store.Apply(ctx, storage.NewBatch(
		storage.CreateHousehold{Household: &models.Household{ID: "solo"}},
		storage.CreateMember{Member: &models.Member{ID: "sam", HouseholdID: "solo", PaydayDay: 1, Active: true}},
	)))

	debt, err := l.CalculateHouseholdDebt(ctx, "solo", "sam")
	require.NoError(t, err)
	assert.Nil(t, debt, "single-member household has no partner")

	require.NoError(t, store.Apply(ctx, storage.NewBatch(
		storage.CreateMember{Member: &models.Member{ID: "former", HouseholdID: "solo", PaydayDay: 1, Active: false}},
	)))
	debt, err = l.CalculateHouseholdDebt(ctx, "solo", "sam")
	require.NoError(t, err)
	assert.Nil(t, debt, "inactive members are not partners")

	require.NoError(t, store.Apply(ctx, storage.NewBatch(
		storage.CreateMember{Member: &models.Member{ID: "pat", HouseholdID: "solo", PaydayDay: 1, Active: true}},
		storage.CreateMember{Member: &models.Member{ID: "kim", HouseholdID: "solo", PaydayDay: 1, Active: true}},
	)))
	debt, err = l.CalculateHouseholdDebt(ctx, "solo", "sam")
	require.NoError(t, err)
	assert.Nil(t, debt, "more than two active members is unsupported")
}

func TestRecordSettlement_MismatchLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.RecordSettlement(context.Background(), SettlementRequest{
		PayerID:         cecilia,
		ReceiverID:      alex,
		Amount:          dec("800"),
		CategoryID:      "settlement",
		CoveredSplitIDs: []string{f.rentSplit, f.grocSplit},
	})
	require.ErrorIs(t, err, models.ErrValidation)

	assertDec(t, "900", f.balance(t, "alex-checking"))
	assertDec(t, "1424.16", f.balance(t, "cecilia-checking"))
	assert.False(t, f.isPaid(t, f.rentSplit))
	assert.False(t, f.isPaid(t, f.grocSplit))
	assert.Empty(t, f.recorder.OfType(events.TypeSettlementRecorded))
}

func TestRecordSettlement_WithinTolerance(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.RecordSettlement(context.Background(), SettlementRequest{
		PayerID: cecilia, ReceiverID: alex, Amount: dec("840.01"),
		CoveredSplitIDs: []string{f.rentSplit},
	})
	require.NoError(t, err)
	assert.True(t, f.isPaid(t, f.rentSplit))
}

func TestRecordSettlement_Full(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.ledger.ComputeDebt(ctx, cecilia, alex)
	require.NoError(t, err)

	req := SettlementRequest{
		PayerID:         cecilia,
		ReceiverID:      alex,
		Amount:          dec("802.08"),
		CategoryID:      "settlement",
		CoveredSplitIDs: []string{f.rentSplit, f.grocSplit},
	}
	settlement, err := f.ledger.RecordSettlement(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, home, settlement.HouseholdID)
	assert.Equal(t, today.Unix(), settlement.CreatedAt)

	assertDec(t, "1702.08", f.balance(t, "alex-checking"))
	assertDec(t, "622.08", f.balance(t, "cecilia-checking"))
	assert.True(t, f.isPaid(t, f.rentSplit))
	assert.True(t, f.isPaid(t, f.grocSplit))

	after, err := f.ledger.ComputeDebt(ctx, cecilia, alex)
	require.NoError(t, err)
	assert.True(t, before.NetDebt.Sub(after.NetDebt).Equal(req.Amount),
		"net debt should drop by the settled amount: before %s, after %s", before.NetDebt, after.NetDebt)
	assert.False(t, after.HasUnsettled())

	stored, err := f.store.GetSettlement(ctx, settlement.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, req.CoveredSplitIDs, stored.CoveredSplitIDs)

	history, err := f.ledger.ListSettlements(ctx, alex)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, settlement.ID, history[0].ID)

	recorded := f.recorder.OfType(events.TypeSettlementRecorded)
	require.Len(t, recorded, 1)
	var payload events.SettlementRecorded
	require.NoError(t, recorded[0].Decode(&payload))
	assert.Equal(t, "802.08", payload.Amount)

	// Retrying the same settlement is rejected and moves nothing.
	_, err = f.ledger.RecordSettlement(ctx, req)
	require.ErrorIs(t, err, models.ErrValidation)
	assertDec(t, "1702.08", f.balance(t, "alex-checking"))
}

func TestRecordSettlement_Partial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.ledger.ComputeDebt(ctx, alex, cecilia)
	require.NoError(t, err)

	_, err = f.ledger.RecordSettlement(ctx, SettlementRequest{
		PayerID: alex, ReceiverID: cecilia, Amount: dec("37.92"),
		CoveredSplitIDs: []string{f.grocSplit},
	})
	require.NoError(t, err)

	after, err := f.ledger.ComputeDebt(ctx, alex, cecilia)
	require.NoError(t, err)
	assertDec(t, "-802.08", before.NetDebt)
	assertDec(t, "-840", after.NetDebt)
	assert.False(t, f.isPaid(t, f.rentSplit))
}

func TestRecordSettlement_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Apply(ctx, storage.NewBatch(
		storage.CreateHousehold{Household: &models.Household{ID: "next-door"}},
		storage.CreateMember{Member: &models.Member{ID: "dana", HouseholdID: "next-door", PaydayDay: 1, Active: true}},
	)))

	tests := []struct {
		name string
		req  SettlementRequest
		want error
	}{
		{"missing payer", SettlementRequest{ReceiverID: alex, Amount: dec("1"), CoveredSplitIDs: []string{f.rentSplit}}, models.ErrValidation},
		{"self settlement", SettlementRequest{PayerID: alex, ReceiverID: alex, Amount: dec("1"), CoveredSplitIDs: []string{f.rentSplit}}, models.ErrValidation},
		{"negative amount", SettlementRequest{PayerID: cecilia, ReceiverID: alex, Amount: dec("-840"), CoveredSplitIDs: []string{f.rentSplit}}, models.ErrValidation},
		{"no splits", SettlementRequest{PayerID: cecilia, ReceiverID: alex, Amount: dec("840")}, models.ErrValidation},
		{"duplicate split", SettlementRequest{PayerID: cecilia, ReceiverID: alex, Amount: dec("1680"), CoveredSplitIDs: []string{f.rentSplit, f.rentSplit}}, models.ErrValidation},
		{"unknown split", SettlementRequest{PayerID: cecilia, ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{"nope"}}, models.ErrNotFound},
		{"unknown payer", SettlementRequest{PayerID: "nobody", ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit}}, models.ErrNotFound},
		{"other household", SettlementRequest{PayerID: "dana", ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit}}, models.ErrValidation},
		{"wrong direction sums negative", SettlementRequest{PayerID: alex, ReceiverID: cecilia, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit}}, models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.RecordSettlement(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.False(t, f.isPaid(t, f.rentSplit))
}

func TestRecordSettlement_MissingAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Dana owes Alex but has no account to pay from.
	require.NoError(t, f.store.Apply(ctx, storage.NewBatch(
		storage.CreateMember{Member: &models.Member{ID: "dana", HouseholdID: home, PaydayDay: 1, Active: false}},
		storage.CreateTransaction{Transaction: &models.Transaction{
			ID: "dana-paid", MemberID: alex, AccountID: "alex-checking",
			Type: models.TransactionExpense, Amount: dec("10"), Date: date(t, "2026-02-05"),
		}},
		storage.CreateSplit{Split: &models.SharedExpenseSplit{
			ID: "dana-split", TransactionID: "dana-paid", OwerUserID: "dana", OwedToUserID: alex, SplitAmount: dec("5"),
		}},
	)))

	_, err := f.ledger.RecordSettlement(ctx, SettlementRequest{
		PayerID: "dana", ReceiverID: alex, Amount: dec("5"), CoveredSplitIDs: []string{"dana-split"},
	})
	require.ErrorIs(t, err, models.ErrAccountNotFound)
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, f.isPaid(t, "dana-split"))
}

// failingStore rejects every batch, as a store would on a write failure.
type failingStore struct {
	storage.Store
	applyErr error
}

func (s *failingStore) Apply(context.Context, *storage.Batch) error { return s.applyErr }

func TestRecordSettlement_StoreFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	broken := New(&failingStore{Store: f.store, applyErr: errors.New("disk I/O error")},
		WithClock(func() time.Time { return today }),
		WithPublisher(f.recorder),
		WithMetrics(f.metrics),
	)
	_, err := broken.RecordSettlement(ctx, SettlementRequest{
		PayerID: cecilia, ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit},
	})
	require.ErrorIs(t, err, models.ErrOperationFailed)

	assertDec(t, "900", f.balance(t, "alex-checking"))
	assert.False(t, f.isPaid(t, f.rentSplit))
	assert.Empty(t, f.recorder.OfType(events.TypeSettlementRecorded), "no event for a rolled back batch")
}

func TestRecordSettlement_ConcurrentPaymentConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Another writer pays the split between validation and commit.
	racing := &racingStore{Store: f.store, splitID: f.rentSplit}
	l := New(racing, WithClock(func() time.Time { return today }))

	_, err := l.RecordSettlement(ctx, SettlementRequest{
		PayerID: cecilia, ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit},
	})
	require.ErrorIs(t, err, models.ErrOperationFailed)
	require.ErrorIs(t, err, storage.ErrConflict)
	assertDec(t, "900", f.balance(t, "alex-checking"))
}

type racingStore struct {
	storage.Store
	splitID string
}

func (s *racingStore) Apply(ctx context.Context, batch *storage.Batch) error {
	if err := s.Store.Apply(ctx, storage.NewBatch(storage.MarkSplitPaid{SplitID: s.splitID})); err != nil {
		return err
	}
	return s.Store.Apply(ctx, batch)
}

func TestRecordSettlement_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.recorder.Err = errors.New("broker unavailable")

	_, err := f.ledger.RecordSettlement(context.Background(), SettlementRequest{
		PayerID: cecilia, ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit},
	})
	require.NoError(t, err)
	assert.True(t, f.isPaid(t, f.rentSplit))
}

func TestSettleUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Alex is the net creditor, so Cecilia pays.
	settlement, err := f.ledger.SettleUp(ctx, home, alex, "settlement")
	require.NoError(t, err)
	assert.Equal(t, cecilia, settlement.PayerUserID)
	assert.Equal(t, alex, settlement.ReceiverUserID)
	assertDec(t, "802.08", settlement.Amount)
	assert.Len(t, settlement.CoveredSplitIDs, 2)

	_, err = f.ledger.SettleUp(ctx, home, alex, "settlement")
	assert.ErrorIs(t, err, models.ErrValidation, "nothing left to settle")
}

func TestSettleUp_EvenBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: cecilia, CategoryID: "utilities", Type: models.TransactionExpense,
		Amount: dec("1604.16"), Date: date(t, "2026-02-04"),
		SharedWith: alex, SplitAmount: dec("802.08"),
	})
	require.NoError(t, err)

	_, err = f.ledger.SettleUp(ctx, home, alex, "settlement")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDeleteTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	posted, err := f.ledger.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, CategoryID: "groceries", Type: models.TransactionExpense,
		Amount: dec("120"), Date: date(t, "2026-02-06"),
		SharedWith: cecilia, SharePercent: dec("50"),
	})
	require.NoError(t, err)
	assertDec(t, "780", f.balance(t, "alex-checking"))

	require.NoError(t, f.ledger.DeleteTransaction(ctx, posted.Transaction.ID))
	assertDec(t, "900", f.balance(t, "alex-checking"))

	splits, err := f.store.ListSplitsByTransaction(ctx, posted.Transaction.ID)
	require.NoError(t, err)
	assert.Empty(t, splits)

	budgets, err := f.store.ListCategoryBudgets(ctx, alex)
	require.NoError(t, err)
	assert.Equal(t, "groceries", budgets[0].CategoryID)
	assertDec(t, "0", budgets[0].Spent)

	assert.Len(t, f.recorder.OfType(events.TypeTransactionDeleted), 1)

	err = f.ledger.DeleteTransaction(ctx, posted.Transaction.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteTransaction_PaidSplitRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.ledger.RecordSettlement(ctx, SettlementRequest{
		PayerID: cecilia, ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit},
	})
	require.NoError(t, err)

	splits, err := f.store.GetSplitsByIDs(ctx, []string{f.rentSplit})
	require.NoError(t, err)
	err = f.ledger.DeleteTransaction(ctx, splits[f.rentSplit].TransactionID)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDeleteTransaction_SettledBeforeCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	splits, err := f.store.GetSplitsByIDs(ctx, []string{f.rentSplit})
	require.NoError(t, err)
	rentID := splits[f.rentSplit].TransactionID

	// Cecilia settles the rent after the delete has checked the split.
	hooked := &hookStore{Store: f.store, before: func(ctx context.Context) error {
		_, err := f.ledger.RecordSettlement(ctx, SettlementRequest{
			PayerID: cecilia, ReceiverID: alex, Amount: dec("840"), CoveredSplitIDs: []string{f.rentSplit},
		})
		return err
	}}
	l := New(hooked, WithClock(func() time.Time { return today }), WithPublisher(f.recorder))

	err = l.DeleteTransaction(ctx, rentID)
	require.ErrorIs(t, err, models.ErrOperationFailed)
	require.ErrorIs(t, err, storage.ErrConflict)

	_, err = f.store.GetTransaction(ctx, rentID)
	require.NoError(t, err)
	assert.True(t, f.isPaid(t, f.rentSplit))
	assertDec(t, "1740", f.balance(t, "alex-checking"), "only the settlement moved the balance")
	assert.Empty(t, f.recorder.OfType(events.TypeTransactionDeleted))
}

func TestPostTransaction_OverlappingPostingsKeepSpend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Another posting for Alex commits after this one has been prepared.
	hooked := &hookStore{Store: f.store, before: func(ctx context.Context) error {
		_, err := f.ledger.PostTransaction(ctx, PostTransactionRequest{
			MemberID: alex, CategoryID: "groceries", Type: models.TransactionExpense, Amount: dec("50"),
		})
		return err
	}}
	l := New(hooked, WithClock(func() time.Time { return today }))

	posted, err := l.PostTransaction(ctx, PostTransactionRequest{
		MemberID: alex, CategoryID: "groceries", Type: models.TransactionExpense, Amount: dec("20"),
	})
	require.NoError(t, err)
	g, ok := posted.Spend.Category("groceries")
	require.True(t, ok)
	assertDec(t, "70", g.Spent)

	budgets, err := f.store.ListCategoryBudgets(ctx, alex)
	require.NoError(t, err)
	assert.Equal(t, "groceries", budgets[0].CategoryID)
	assertDec(t, "70", budgets[0].Spent)

	summary, err := f.store.GetBudgetSummary(ctx, alex)
	require.NoError(t, err)
	assertDec(t, "2170", summary.TotalSpent)
}

// hookStore runs before once, ahead of the first batch it applies.
type hookStore struct {
	storage.Store
	before func(ctx context.Context) error
}

func (s *hookStore) Apply(ctx context.Context, batch *storage.Batch) error {
	if before := s.before; before != nil {
		s.before = nil
		if err := before(ctx); err != nil {
			return err
		}
	}
	return s.Store.Apply(ctx, batch)
}

func TestCurrentPeriodAndSetPayday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	period, err := f.ledger.CurrentPeriod(ctx, alex)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-25", models.FormatDate(period.Start))
	assert.Equal(t, "2026-02-24", models.FormatDate(period.End))
	assert.Equal(t, 16, period.DaysRemaining)

	// Moving payday to the 5th drops the rent (2026-02-01) out of the window.
	period, err = f.ledger.SetPayday(ctx, alex, 5)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-05", models.FormatDate(period.Start))
	assert.Equal(t, "2026-03-04", models.FormatDate(period.End))

	m, err := f.store.GetMember(ctx, alex)
	require.NoError(t, err)
	assert.Equal(t, 5, m.PaydayDay)

	summary, err := f.store.GetBudgetSummary(ctx, alex)
	require.NoError(t, err)
	assertDec(t, "0", summary.TotalSpent)

	// And back again restores it.
	_, err = f.ledger.SetPayday(ctx, alex, 25)
	require.NoError(t, err)
	totals, err := f.ledger.RefreshSpend(ctx, alex)
	require.NoError(t, err)
	assertDec(t, "2100", totals.TotalSpent)

	_, err = f.ledger.SetPayday(ctx, alex, 0)
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = f.ledger.CurrentPeriod(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRefreshSpend_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.ledger.RefreshSpend(ctx, alex)
	require.NoError(t, err)
	second, err := f.ledger.RefreshSpend(ctx, alex)
	require.NoError(t, err)

	assert.True(t, first.TotalSpent.Equal(second.TotalSpent))
	budgets, err := f.store.ListCategoryBudgets(ctx, alex)
	require.NoError(t, err)
	assertDec(t, "2100", budgets[1].Spent, "spent must be replaced, not accumulated")
}
