package http

import (
	"errors"
	"net/http"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/core/domain/services"
	"foodex/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use-case error onto the HTTP status taxonomy:
//
//	duplicate email, bad input      -> 400
//	invalid credentials, bad token  -> 401
//	forbidden relation              -> 403
//	unknown object                  -> 404
//	state conflicts                 -> 409
//	everything else                 -> 500
func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Do not leak internals; the cause stays in the server log.
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, account.ErrDuplicateEmail),
		errors.Is(err, account.ErrNotADeliveryUser),
		errors.Is(err, account.ErrEmailIsRequired),
		errors.Is(err, order.ErrItemsAreRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	case errors.Is(err, account.ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized

	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
