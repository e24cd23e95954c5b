package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates a domain or infrastructure error into the shared
// error shape: statusCode, a stable category message, and the error text as
// details. Every handler funnels failures through here so clients see one
// format regardless of which layer rejected the request.
func respondError(ctx echo.Context, err error) error {
	statusCode, message := classifyError(err)

	details := err.Error()
	return ctx.JSON(statusCode, servers.Error{
		StatusCode: statusCode,
		Message:    message,
		Details:    &details,
	})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Resource not found"

	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, "Order was modified concurrently"

	case errors.Is(err, order.ErrNotAssignedDeliveryPartner):
		return http.StatusForbidden, "Order is assigned to another delivery partner"

	case errors.Is(err, order.ErrOrderIsNotAvailable),
		errors.Is(err, order.ErrOrderCannotBeUpdated),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, "Invalid request"

	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondBadRequest reports a malformed request body or parameter before any
// command or query was constructed.
func respondBadRequest(ctx echo.Context, details string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid request",
		Details:    &details,
	})
}
