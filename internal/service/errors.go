package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/paycycle/internal/middleware"
	"github.com/mmynk/paycycle/internal/models"
)

var (
	errUnauthenticated = errors.New("authentication required")
	errForbidden       = errors.New("viewer may not act on this record")
)

// toConnectError maps the ledger's error taxonomy to Connect codes.
// A rejected batch is reported as Aborted even when its cause is a missing row.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, models.ErrOperationFailed):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, models.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// viewer returns the authenticated member and household.
func viewer(ctx context.Context) (memberID, householdID string, err error) {
	memberID = middleware.GetMemberID(ctx)
	if memberID == "" {
		return "", "", connect.NewError(connect.CodeUnauthenticated, errUnauthenticated)
	}
	return memberID, middleware.GetHouseholdID(ctx), nil
}
