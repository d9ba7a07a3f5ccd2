package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/paycycle/internal/calculator"
	"github.com/mmynk/paycycle/internal/ledger"
	"github.com/mmynk/paycycle/internal/models"
	"github.com/mmynk/paycycle/internal/storage"
	"github.com/mmynk/paycycle/pkg/api"
	"github.com/mmynk/paycycle/pkg/api/apiconnect"
)

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	ledger *ledger.Ledger
	store  storage.Store
}

// NewLedgerService creates a new LedgerService. The store is used for
// authorization lookups; every mutation goes through the ledger.
func NewLedgerService(l *ledger.Ledger, store storage.Store) *LedgerService {
	return &LedgerService{ledger: l, store: store}
}

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

// ComputePeriod handles period calculation for an arbitrary payday and date.
func (s *LedgerService) ComputePeriod(ctx context.Context, req *connect.Request[api.ComputePeriodRequest]) (*connect.Response[api.ComputePeriodResponse], error) {
	today := s.ledger.Today()
	if req.Msg.Today != "" {
		d, err := models.ParseDate(req.Msg.Today)
		if err != nil {
			return nil, toConnectError(err)
		}
		today = d
	}

	period, err := calculator.ComputePeriod(req.Msg.PaydayDay, today)
	if err != nil {
		slog.Warn("ComputePeriod failed", "payday_day", req.Msg.PaydayDay, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ComputePeriodResponse{Period: toAPIPeriod(period)}), nil
}

// GetCurrentPeriod handles fetching a household member's current period.
func (s *LedgerService) GetCurrentPeriod(ctx context.Context, req *connect.Request[api.GetCurrentPeriodRequest]) (*connect.Response[api.GetCurrentPeriodResponse], error) {
	memberID, householdID, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	target := memberID
	if req.Msg.MemberID != "" && req.Msg.MemberID != memberID {
		m, err := s.store.GetMember(ctx, req.Msg.MemberID)
		if err != nil {
			return nil, toConnectError(err)
		}
		if m.HouseholdID != householdID {
			return nil, connect.NewError(connect.CodePermissionDenied, errForbidden)
		}
		target = m.ID
	}

	period, err := s.ledger.CurrentPeriod(ctx, target)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetCurrentPeriodResponse{Period: toAPIPeriod(period)}), nil
}

// SetPayday handles changing the viewer's payday.
func (s *LedgerService) SetPayday(ctx context.Context, req *connect.Request[api.SetPaydayRequest]) (*connect.Response[api.SetPaydayResponse], error) {
	memberID, _, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SetPayday request received", "member_id", memberID, "payday_day", req.Msg.PaydayDay)

	period, err := s.ledger.SetPayday(ctx, memberID, req.Msg.PaydayDay)
	if err != nil {
		slog.Error("SetPayday failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetPaydayResponse{Period: toAPIPeriod(period)}), nil
}

// RefreshSpend handles recomputing the viewer's spend.
func (s *LedgerService) RefreshSpend(ctx context.Context, req *connect.Request[api.RefreshSpendRequest]) (*connect.Response[api.RefreshSpendResponse], error) {
	memberID, _, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := s.ledger.RefreshSpend(ctx, memberID)
	if err != nil {
		slog.Error("RefreshSpend failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RefreshSpendResponse{Spend: toAPISpend(totals)}), nil
}

// ComputeDebt handles netting the viewer's debt with a named partner.
// The partner must belong to the viewer's household.
func (s *LedgerService) ComputeDebt(ctx context.Context, req *connect.Request[api.ComputeDebtRequest]) (*connect.Response[api.ComputeDebtResponse], error) {
	memberID, householdID, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	if partnerID := req.Msg.PartnerID; partnerID != "" && partnerID != memberID {
		partner, err := s.store.GetMember(ctx, partnerID)
		if err != nil {
			return nil, toConnectError(err)
		}
		if partner.HouseholdID != householdID {
			return nil, connect.NewError(connect.CodePermissionDenied, errForbidden)
		}
	}

	debt, err := s.ledger.ComputeDebt(ctx, memberID, req.Msg.PartnerID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ComputeDebtResponse{Debt: toAPIDebt(debt)}), nil
}

// GetHouseholdDebt handles netting the viewer's debt with their household partner.
func (s *LedgerService) GetHouseholdDebt(ctx context.Context, req *connect.Request[api.GetHouseholdDebtRequest]) (*connect.Response[api.GetHouseholdDebtResponse], error) {
	memberID, householdID, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	debt, err := s.ledger.CalculateHouseholdDebt(ctx, householdID, memberID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &api.GetHouseholdDebtResponse{}
	if debt != nil {
		d := toAPIDebt(debt.Summary)
		resp.Debt = &d
	}
	return connect.NewResponse(resp), nil
}

// RecordSettlement handles recording a payment between the viewer and a partner.
func (s *LedgerService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	memberID, _, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.PayerID != memberID && req.Msg.ReceiverID != memberID {
		return nil, connect.NewError(connect.CodePermissionDenied, errForbidden)
	}

	slog.Info("RecordSettlement request received",
		"payer_id", req.Msg.PayerID,
		"receiver_id", req.Msg.ReceiverID,
		"amount", req.Msg.Amount.String(),
		"splits", len(req.Msg.CoveredSplitIDs),
	)

	settlement, err := s.ledger.RecordSettlement(ctx, ledger.SettlementRequest{
		PayerID:         req.Msg.PayerID,
		ReceiverID:      req.Msg.ReceiverID,
		Amount:          req.Msg.Amount,
		CategoryID:      req.Msg.CategoryID,
		CoveredSplitIDs: req.Msg.CoveredSplitIDs,
	})
	if err != nil {
		slog.Error("RecordSettlement failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RecordSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

// SettleUp handles settling the viewer's whole household balance.
func (s *LedgerService) SettleUp(ctx context.Context, req *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error) {
	memberID, householdID, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SettleUp request received", "member_id", memberID, "household_id", householdID)

	settlement, err := s.ledger.SettleUp(ctx, householdID, memberID, req.Msg.CategoryID)
	if err != nil {
		slog.Error("SettleUp failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SettleUpResponse{Settlement: toAPISettlement(settlement)}), nil
}

// ListSettlements handles listing the viewer's settlement history.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	memberID, _, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	settlements, err := s.ledger.ListSettlements(ctx, memberID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]api.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toAPISettlement(st)
	}
	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: out}), nil
}

// PostTransaction handles posting a transaction for the viewer.
func (s *LedgerService) PostTransaction(ctx context.Context, req *connect.Request[api.PostTransactionRequest]) (*connect.Response[api.PostTransactionResponse], error) {
	memberID, _, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	var date time.Time
	if req.Msg.Date != "" {
		date, err = models.ParseDate(req.Msg.Date)
		if err != nil {
			return nil, toConnectError(err)
		}
	}

	slog.Info("PostTransaction request received",
		"member_id", memberID,
		"type", req.Msg.Type,
		"amount", req.Msg.Amount.String(),
		"shared_with", req.Msg.SharedWith,
	)

	posted, err := s.ledger.PostTransaction(ctx, ledger.PostTransactionRequest{
		MemberID:     memberID,
		AccountID:    req.Msg.AccountID,
		CategoryID:   req.Msg.CategoryID,
		Type:         models.TransactionType(req.Msg.Type),
		Amount:       req.Msg.Amount,
		Date:         date,
		Description:  req.Msg.Description,
		SharedWith:   req.Msg.SharedWith,
		SplitAmount:  req.Msg.SplitAmount,
		SharePercent: req.Msg.SharePercent,
	})
	if err != nil {
		slog.Error("PostTransaction failed", "member_id", memberID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.PostTransactionResponse{
		Transaction: toAPITransaction(posted.Transaction),
		Split:       toAPISplit(posted.Split),
		Spend:       toAPISpend(posted.Spend),
	}), nil
}

// DeleteTransaction handles deleting one of the viewer's transactions.
func (s *LedgerService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	memberID, _, err := viewer(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.TransactionID == "" {
		return nil, toConnectError(models.Validationf("transaction_id is required"))
	}

	tx, err := s.store.GetTransaction(ctx, req.Msg.TransactionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if tx.MemberID != memberID {
		return nil, connect.NewError(connect.CodePermissionDenied, errForbidden)
	}

	if err := s.ledger.DeleteTransaction(ctx, tx.ID); err != nil {
		slog.Error("DeleteTransaction failed", "transaction_id", tx.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteTransactionResponse{}), nil
}
