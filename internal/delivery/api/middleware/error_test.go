package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/validator"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "validation failure keeps field details",
			err:         &validator.Error{Fields: []validator.FieldError{{Field: "email", Rule: "required"}}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrTooManyRequests, "login"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   domainerrors.ErrTooManyRequests.ErrorCode(),
		},
		{
			name:        "client error carries its details",
			err:         errors.Wrap(domainerrors.ErrUserNotFound.WithDetails("unknown user ids: 42"), "send"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "USER_NOT_FOUND",
			wantDetails: true,
		},
		{
			name:       "server error hides its details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: relation does not exist"), "failed to list"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "oversized body",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_ENTITY_TOO_LARGE",
		},
		{
			name:       "anything else is opaque",
			err:        errors.New("pq: relation does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/x", nil), rec)

			mw.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantDetails, body.Details != nil)
			assert.NotContains(t, rec.Body.String(), "relation")
		})
	}
}

func TestHandleHTTPError_HeadHasNoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/api/x", nil), rec)

	NewErrorMiddleware(slog.Default()).HandleHTTPError(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
