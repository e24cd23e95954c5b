package http

import (
	"errors"
	"net/http"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "object not found",
			err:        errs.NewObjectNotFoundError("order", "abc"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Resource not found",
		},
		{
			name:       "stale status guard",
			err:        errs.NewVersionIsInvalidError("order status", errors.New("raced")),
			wantStatus: http.StatusConflict,
			wantMsg:    "Order was modified concurrently",
		},
		{
			name:       "not assigned partner",
			err:        order.ErrNotAssignedDeliveryPartner,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Order is assigned to another delivery partner",
		},
		{
			name:       "order not available",
			err:        order.ErrOrderIsNotAvailable,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
		},
		{
			name:       "terminal order",
			err:        order.ErrOrderCannotBeUpdated,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
		},
		{
			name:       "required value",
			err:        errs.NewValueIsRequiredError("items"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request",
		},
		{
			name:       "unexpected failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
