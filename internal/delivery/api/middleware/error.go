package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the single place errors become JSON bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type errorReply struct {
	status  int
	code    string
	message string
	details any
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	reply := m.classify(err)
	if reply.status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("code", reply.code),
			slog.String("method", c.Request().Method),
			slog.String("route", c.Path()),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(reply.status)

		return
	}
	_ = response.Error(c, reply.status, reply.code, reply.message, reply.details)
}

func (m *ErrorMiddleware) classify(err error) errorReply {
	var validationErr *validator.Error
	if errors.As(err, &validationErr) {
		return fromAppError(domainerrors.ErrValidationFailed, validationErr.Fields)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Server-side details stay in the log.
		if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
			return fromAppError(appErr, appErr.Details())
		}

		return fromAppError(appErr, nil)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		return errorReply{status: httpErr.Code, code: statusCode(httpErr.Code), message: message}
	}

	return fromAppError(domainerrors.ErrInternalError, nil)
}

func fromAppError(appErr domainerrors.AppError, details any) errorReply {
	return errorReply{
		status:  appErr.HTTPCode(),
		code:    appErr.ErrorCode(),
		message: appErr.Message(),
		details: details,
	}
}

// statusCode turns a framework status into a code in the API's vocabulary,
// e.g. 404 -> NOT_FOUND, 413 -> REQUEST_ENTITY_TOO_LARGE.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
