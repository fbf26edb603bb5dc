package middleware

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// RequireDatabase answers 503 DATABASE_NOT_CONFIGURED when the service runs without postgres.
func RequireDatabase(availability repository.Availability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !availability.Configured() {
				return domainerrors.ErrDatabaseNotConfigured
			}

			return next(c)
		}
	}
}
