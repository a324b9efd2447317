package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/internal/auth"
	"github.com/mmynk/tripboard/internal/ledger"
	"github.com/mmynk/tripboard/internal/remote"
)

// connectError maps domain errors onto Connect codes. Remote logic errors
// keep their message verbatim so clients can show it.
func connectError(err error) error {
	var le *remote.LogicError
	switch {
	case errors.As(err, &le):
		return connect.NewError(connect.CodeAborted, le)
	case errors.Is(err, remote.ErrNotConfigured):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case remote.IsNetwork(err):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, ledger.ErrInvalidExpense):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
