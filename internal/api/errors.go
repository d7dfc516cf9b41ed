package api

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tripsplit/internal/auth"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/refdata"
	"github.com/mmynk/tripsplit/internal/service"
)

// toConnectError maps domain errors to Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrUnknownMember):
		code = connect.CodeInvalidArgument
	case errors.Is(err, service.ErrTripNotFound),
		errors.Is(err, service.ErrExpenseNotFound),
		errors.Is(err, service.ErrInvalidShareCode):
		code = connect.CodeNotFound
	case errors.Is(err, service.ErrDuplicateMember):
		code = connect.CodeAlreadyExists
	case errors.Is(err, auth.ErrWrongTrip):
		code = connect.CodePermissionDenied
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		code = connect.CodeUnauthenticated
	case errors.Is(err, models.ErrMalformedRecord):
		code = connect.CodeDataLoss
	case errors.Is(err, refdata.ErrUnexpectedStatus):
		code = connect.CodeUnavailable
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	}
	return connect.NewError(code, err)
}
