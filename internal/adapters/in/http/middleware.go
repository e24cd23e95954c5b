package http

import (
	"net/http"
	"strconv"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// userIDContextKey is where the identity middleware stores the caller's ID.
const userIDContextKey = "userID"

// IdentityMiddleware resolves the caller from the X-User-Id header when one is
// supplied. Requests without the header pass through anonymously; the read
// endpoints serve them, while handlers that need an identity reject them
// themselves. A header that is present but not a valid UUID is rejected with
// 401. The header stands in for a real authentication layer; handlers trust it
// as the customer or delivery partner identity.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawID := ctx.Request().Header.Get("X-User-Id")
			if rawID == "" {
				return next(ctx)
			}

			userID, err := kernel.UUIDFromString(rawID)
			if err != nil {
				details := "X-User-Id header is not a valid UUID"
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					StatusCode: http.StatusUnauthorized,
					Message:    "Unauthorized",
					Details:    &details,
				})
			}

			ctx.Set(userIDContextKey, userID)
			return next(ctx)
		}
	}
}

// userID returns the caller identity stored by IdentityMiddleware.
func userID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(userIDContextKey).(kernel.UUID)
	return id, ok
}

// MetricsMiddleware records request durations per method, route and status.
func MetricsMiddleware(orderMetrics *metrics.OrderMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			orderMetrics.ObserveRequest(
				ctx.Request().Method,
				ctx.Path(),
				strconv.Itoa(ctx.Response().Status),
				time.Since(start),
			)

			return err
		}
	}
}
