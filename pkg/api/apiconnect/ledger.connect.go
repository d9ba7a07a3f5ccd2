// Package apiconnect exposes paycycle.v1.LedgerService over Connect.
//
// Requests and responses are the plain structs of package api carried by
// api.Codec, in the shape protoc-gen-connect-go would generate.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/paycycle/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "paycycle.v1.LedgerService"

// These constants are the fully-qualified names of the RPCs defined in this package.
const (
	// LedgerServiceComputePeriodProcedure is the fully-qualified name of the LedgerService's ComputePeriod RPC.
	LedgerServiceComputePeriodProcedure = "/paycycle.v1.LedgerService/ComputePeriod"
	// LedgerServiceGetCurrentPeriodProcedure is the fully-qualified name of the LedgerService's GetCurrentPeriod RPC.
	LedgerServiceGetCurrentPeriodProcedure = "/paycycle.v1.LedgerService/GetCurrentPeriod"
	// LedgerServiceSetPaydayProcedure is the fully-qualified name of the LedgerService's SetPayday RPC.
	LedgerServiceSetPaydayProcedure = "/paycycle.v1.LedgerService/SetPayday"
	// LedgerServiceRefreshSpendProcedure is the fully-qualified name of the LedgerService's RefreshSpend RPC.
	LedgerServiceRefreshSpendProcedure = "/paycycle.v1.LedgerService/RefreshSpend"
	// LedgerServiceComputeDebtProcedure is the fully-qualified name of the LedgerService's ComputeDebt RPC.
	LedgerServiceComputeDebtProcedure = "/paycycle.v1.LedgerService/ComputeDebt"
	// LedgerServiceGetHouseholdDebtProcedure is the fully-qualified name of the LedgerService's GetHouseholdDebt RPC.
	LedgerServiceGetHouseholdDebtProcedure = "/paycycle.v1.LedgerService/GetHouseholdDebt"
	// LedgerServiceRecordSettlementProcedure is the fully-qualified name of the LedgerService's RecordSettlement RPC.
	LedgerServiceRecordSettlementProcedure = "/paycycle.v1.LedgerService/RecordSettlement"
	// LedgerServiceSettleUpProcedure is the fully-qualified name of the LedgerService's SettleUp RPC.
	LedgerServiceSettleUpProcedure = "/paycycle.v1.LedgerService/SettleUp"
	// LedgerServiceListSettlementsProcedure is the fully-qualified name of the LedgerService's ListSettlements RPC.
	LedgerServiceListSettlementsProcedure = "/paycycle.v1.LedgerService/ListSettlements"
	// LedgerServicePostTransactionProcedure is the fully-qualified name of the LedgerService's PostTransaction RPC.
	LedgerServicePostTransactionProcedure = "/paycycle.v1.LedgerService/PostTransaction"
	// LedgerServiceDeleteTransactionProcedure is the fully-qualified name of the LedgerService's DeleteTransaction RPC.
	LedgerServiceDeleteTransactionProcedure = "/paycycle.v1.LedgerService/DeleteTransaction"
)

// LedgerServiceClient is a client for the paycycle.v1.LedgerService service.
type LedgerServiceClient interface {
	// ComputePeriod computes a budget period from a payday and a date.
	ComputePeriod(context.Context, *connect.Request[api.ComputePeriodRequest]) (*connect.Response[api.ComputePeriodResponse], error)
	// GetCurrentPeriod returns a member's current budget period.
	GetCurrentPeriod(context.Context, *connect.Request[api.GetCurrentPeriodRequest]) (*connect.Response[api.GetCurrentPeriodResponse], error)
	// SetPayday changes the viewer's payday and recomputes spend.
	SetPayday(context.Context, *connect.Request[api.SetPaydayRequest]) (*connect.Response[api.SetPaydayResponse], error)
	// RefreshSpend recomputes and stores the viewer's spend for the current period.
	RefreshSpend(context.Context, *connect.Request[api.RefreshSpendRequest]) (*connect.Response[api.RefreshSpendResponse], error)
	// ComputeDebt nets the unpaid splits between the viewer and a partner.
	ComputeDebt(context.Context, *connect.Request[api.ComputeDebtRequest]) (*connect.Response[api.ComputeDebtResponse], error)
	// GetHouseholdDebt nets the unpaid splits between the viewer and their household partner.
	GetHouseholdDebt(context.Context, *connect.Request[api.GetHouseholdDebtRequest]) (*connect.Response[api.GetHouseholdDebtResponse], error)
	// RecordSettlement records a settlement covering explicit splits.
	RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error)
	// SettleUp settles the whole balance between the viewer and their partner.
	SettleUp(context.Context, *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error)
	// ListSettlements lists the viewer's settlements, newest first.
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	// PostTransaction posts a personal or shared transaction.
	PostTransaction(context.Context, *connect.Request[api.PostTransactionRequest]) (*connect.Response[api.PostTransactionResponse], error)
	// DeleteTransaction deletes a transaction and its unpaid splits.
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
}

// NewLedgerServiceClient constructs a client for the paycycle.v1.LedgerService service.
// The JSON codec is always selected; opts may add interceptors and the like.
//
// The URL supplied here should be the base URL for the Connect server
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &ledgerServiceClient{
		computePeriod: connect.NewClient[api.ComputePeriodRequest, api.ComputePeriodResponse](
			httpClient,
			baseURL+LedgerServiceComputePeriodProcedure,
			opts...,
		),
		getCurrentPeriod: connect.NewClient[api.GetCurrentPeriodRequest, api.GetCurrentPeriodResponse](
			httpClient,
			baseURL+LedgerServiceGetCurrentPeriodProcedure,
			opts...,
		),
		setPayday: connect.NewClient[api.SetPaydayRequest, api.SetPaydayResponse](
			httpClient,
			baseURL+LedgerServiceSetPaydayProcedure,
			opts...,
		),
		refreshSpend: connect.NewClient[api.RefreshSpendRequest, api.RefreshSpendResponse](
			httpClient,
			baseURL+LedgerServiceRefreshSpendProcedure,
			opts...,
		),
		computeDebt: connect.NewClient[api.ComputeDebtRequest, api.ComputeDebtResponse](
			httpClient,
			baseURL+LedgerServiceComputeDebtProcedure,
			opts...,
		),
		getHouseholdDebt: connect.NewClient[api.GetHouseholdDebtRequest, api.GetHouseholdDebtResponse](
			httpClient,
			baseURL+LedgerServiceGetHouseholdDebtProcedure,
			opts...,
		),
		recordSettlement: connect.NewClient[api.RecordSettlementRequest, api.RecordSettlementResponse](
			httpClient,
			baseURL+LedgerServiceRecordSettlementProcedure,
			opts...,
		),
		settleUp: connect.NewClient[api.SettleUpRequest, api.SettleUpResponse](
			httpClient,
			baseURL+LedgerServiceSettleUpProcedure,
			opts...,
		),
		listSettlements: connect.NewClient[api.ListSettlementsRequest, api.ListSettlementsResponse](
			httpClient,
			baseURL+LedgerServiceListSettlementsProcedure,
			opts...,
		),
		postTransaction: connect.NewClient[api.PostTransactionRequest, api.PostTransactionResponse](
			httpClient,
			baseURL+LedgerServicePostTransactionProcedure,
			opts...,
		),
		deleteTransaction: connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](
			httpClient,
			baseURL+LedgerServiceDeleteTransactionProcedure,
			opts...,
		),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	computePeriod     *connect.Client[api.ComputePeriodRequest, api.ComputePeriodResponse]
	getCurrentPeriod  *connect.Client[api.GetCurrentPeriodRequest, api.GetCurrentPeriodResponse]
	setPayday         *connect.Client[api.SetPaydayRequest, api.SetPaydayResponse]
	refreshSpend      *connect.Client[api.RefreshSpendRequest, api.RefreshSpendResponse]
	computeDebt       *connect.Client[api.ComputeDebtRequest, api.ComputeDebtResponse]
	getHouseholdDebt  *connect.Client[api.GetHouseholdDebtRequest, api.GetHouseholdDebtResponse]
	recordSettlement  *connect.Client[api.RecordSettlementRequest, api.RecordSettlementResponse]
	settleUp          *connect.Client[api.SettleUpRequest, api.SettleUpResponse]
	listSettlements   *connect.Client[api.ListSettlementsRequest, api.ListSettlementsResponse]
	postTransaction   *connect.Client[api.PostTransactionRequest, api.PostTransactionResponse]
	deleteTransaction *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
}

// ComputePeriod calls paycycle.v1.LedgerService.ComputePeriod.
func (c *ledgerServiceClient) ComputePeriod(ctx context.Context, req *connect.Request[api.ComputePeriodRequest]) (*connect.Response[api.ComputePeriodResponse], error) {
	return c.computePeriod.CallUnary(ctx, req)
}

// GetCurrentPeriod calls paycycle.v1.LedgerService.GetCurrentPeriod.
func (c *ledgerServiceClient) GetCurrentPeriod(ctx context.Context, req *connect.Request[api.GetCurrentPeriodRequest]) (*connect.Response[api.GetCurrentPeriodResponse], error) {
	return c.getCurrentPeriod.CallUnary(ctx, req)
}

// SetPayday calls paycycle.v1.LedgerService.SetPayday.
func (c *ledgerServiceClient) SetPayday(ctx context.Context, req *connect.Request[api.SetPaydayRequest]) (*connect.Response[api.SetPaydayResponse], error) {
	return c.setPayday.CallUnary(ctx, req)
}

// RefreshSpend calls paycycle.v1.LedgerService.RefreshSpend.
func (c *ledgerServiceClient) RefreshSpend(ctx context.Context, req *connect.Request[api.RefreshSpendRequest]) (*connect.Response[api.RefreshSpendResponse], error) {
	return c.refreshSpend.CallUnary(ctx, req)
}

// ComputeDebt calls paycycle.v1.LedgerService.ComputeDebt.
func (c *ledgerServiceClient) ComputeDebt(ctx context.Context, req *connect.Request[api.ComputeDebtRequest]) (*connect.Response[api.ComputeDebtResponse], error) {
	return c.computeDebt.CallUnary(ctx, req)
}

// GetHouseholdDebt calls paycycle.v1.LedgerService.GetHouseholdDebt.
func (c *ledgerServiceClient) GetHouseholdDebt(ctx context.Context, req *connect.Request[api.GetHouseholdDebtRequest]) (*connect.Response[api.GetHouseholdDebtResponse], error) {
	return c.getHouseholdDebt.CallUnary(ctx, req)
}

// RecordSettlement calls paycycle.v1.LedgerService.RecordSettlement.
func (c *ledgerServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

// SettleUp calls paycycle.v1.LedgerService.SettleUp.
func (c *ledgerServiceClient) SettleUp(ctx context.Context, req *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error) {
	return c.settleUp.CallUnary(ctx, req)
}

// ListSettlements calls paycycle.v1.LedgerService.ListSettlements.
func (c *ledgerServiceClient) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

// PostTransaction calls paycycle.v1.LedgerService.PostTransaction.
func (c *ledgerServiceClient) PostTransaction(ctx context.Context, req *connect.Request[api.PostTransactionRequest]) (*connect.Response[api.PostTransactionResponse], error) {
	return c.postTransaction.CallUnary(ctx, req)
}

// DeleteTransaction calls paycycle.v1.LedgerService.DeleteTransaction.
func (c *ledgerServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the paycycle.v1.LedgerService service.
type LedgerServiceHandler interface {
	// ComputePeriod computes a budget period from a payday and a date.
	ComputePeriod(context.Context, *connect.Request[api.ComputePeriodRequest]) (*connect.Response[api.ComputePeriodResponse], error)
	// GetCurrentPeriod returns a member's current budget period.
	GetCurrentPeriod(context.Context, *connect.Request[api.GetCurrentPeriodRequest]) (*connect.Response[api.GetCurrentPeriodResponse], error)
	// SetPayday changes the viewer's payday and recomputes spend.
	SetPayday(context.Context, *connect.Request[api.SetPaydayRequest]) (*connect.Response[api.SetPaydayResponse], error)
	// RefreshSpend recomputes and stores the viewer's spend for the current period.
	RefreshSpend(context.Context, *connect.Request[api.RefreshSpendRequest]) (*connect.Response[api.RefreshSpendResponse], error)
	// ComputeDebt nets the unpaid splits between the viewer and a partner.
	ComputeDebt(context.Context, *connect.Request[api.ComputeDebtRequest]) (*connect.Response[api.ComputeDebtResponse], error)
	// GetHouseholdDebt nets the unpaid splits between the viewer and their household partner.
	GetHouseholdDebt(context.Context, *connect.Request[api.GetHouseholdDebtRequest]) (*connect.Response[api.GetHouseholdDebtResponse], error)
	// RecordSettlement records a settlement covering explicit splits.
	RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error)
	// SettleUp settles the whole balance between the viewer and their partner.
	SettleUp(context.Context, *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error)
	// ListSettlements lists the viewer's settlements, newest first.
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	// PostTransaction posts a personal or shared transaction.
	PostTransaction(context.Context, *connect.Request[api.PostTransactionRequest]) (*connect.Response[api.PostTransactionResponse], error)
	// DeleteTransaction deletes a transaction and its unpaid splits.
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with
// the JSON codec.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	computePeriodHandler := connect.NewUnaryHandler(
		LedgerServiceComputePeriodProcedure,
		svc.ComputePeriod,
		opts...,
	)
	getCurrentPeriodHandler := connect.NewUnaryHandler(
		LedgerServiceGetCurrentPeriodProcedure,
		svc.GetCurrentPeriod,
		opts...,
	)
	setPaydayHandler := connect.NewUnaryHandler(
		LedgerServiceSetPaydayProcedure,
		svc.SetPayday,
		opts...,
	)
	refreshSpendHandler := connect.NewUnaryHandler(
		LedgerServiceRefreshSpendProcedure,
		svc.RefreshSpend,
		opts...,
	)
	computeDebtHandler := connect.NewUnaryHandler(
		LedgerServiceComputeDebtProcedure,
		svc.ComputeDebt,
		opts...,
	)
	getHouseholdDebtHandler := connect.NewUnaryHandler(
		LedgerServiceGetHouseholdDebtProcedure,
		svc.GetHouseholdDebt,
		opts...,
	)
	recordSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceRecordSettlementProcedure,
		svc.RecordSettlement,
		opts...,
	)
	settleUpHandler := connect.NewUnaryHandler(
		LedgerServiceSettleUpProcedure,
		svc.SettleUp,
		opts...,
	)
	listSettlementsHandler := connect.NewUnaryHandler(
		LedgerServiceListSettlementsProcedure,
		svc.ListSettlements,
		opts...,
	)
	postTransactionHandler := connect.NewUnaryHandler(
		LedgerServicePostTransactionProcedure,
		svc.PostTransaction,
		opts...,
	)
	deleteTransactionHandler := connect.NewUnaryHandler(
		LedgerServiceDeleteTransactionProcedure,
		svc.DeleteTransaction,
		opts...,
	)
	return "/paycycle.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceComputePeriodProcedure:
			computePeriodHandler.ServeHTTP(w, r)
		case LedgerServiceGetCurrentPeriodProcedure:
			getCurrentPeriodHandler.ServeHTTP(w, r)
		case LedgerServiceSetPaydayProcedure:
			setPaydayHandler.ServeHTTP(w, r)
		case LedgerServiceRefreshSpendProcedure:
			refreshSpendHandler.ServeHTTP(w, r)
		case LedgerServiceComputeDebtProcedure:
			computeDebtHandler.ServeHTTP(w, r)
		case LedgerServiceGetHouseholdDebtProcedure:
			getHouseholdDebtHandler.ServeHTTP(w, r)
		case LedgerServiceRecordSettlementProcedure:
			recordSettlementHandler.ServeHTTP(w, r)
		case LedgerServiceSettleUpProcedure:
			settleUpHandler.ServeHTTP(w, r)
		case LedgerServiceListSettlementsProcedure:
			listSettlementsHandler.ServeHTTP(w, r)
		case LedgerServicePostTransactionProcedure:
			postTransactionHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteTransactionProcedure:
			deleteTransactionHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) ComputePeriod(context.Context, *connect.Request[api.ComputePeriodRequest]) (*connect.Response[api.ComputePeriodResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.ComputePeriod is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetCurrentPeriod(context.Context, *connect.Request[api.GetCurrentPeriodRequest]) (*connect.Response[api.GetCurrentPeriodResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.GetCurrentPeriod is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetPayday(context.Context, *connect.Request[api.SetPaydayRequest]) (*connect.Response[api.SetPaydayResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.SetPayday is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RefreshSpend(context.Context, *connect.Request[api.RefreshSpendRequest]) (*connect.Response[api.RefreshSpendResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.RefreshSpend is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ComputeDebt(context.Context, *connect.Request[api.ComputeDebtRequest]) (*connect.Response[api.ComputeDebtResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.ComputeDebt is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetHouseholdDebt(context.Context, *connect.Request[api.GetHouseholdDebtRequest]) (*connect.Response[api.GetHouseholdDebtResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.GetHouseholdDebt is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RecordSettlement(context.Context, *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.RecordSettlement is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SettleUp(context.Context, *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.SettleUp is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.ListSettlements is not implemented"))
}

func (UnimplementedLedgerServiceHandler) PostTransaction(context.Context, *connect.Request[api.PostTransactionRequest]) (*connect.Response[api.PostTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.PostTransaction is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("paycycle.v1.LedgerService.DeleteTransaction is not implemented"))
}
