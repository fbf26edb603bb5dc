// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// requestLogger returns a request-scoped logger if available, otherwise falls back to the service's logger.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// notifyBestEffort writes an in-app notification in its own transaction.
// Failures are logged and swallowed so they never undo the caller's committed work.
func notifyBestEffort(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger, notification *entity.Notification) {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewNotificationRepository().Create(ctx, notification)
	})
	if err != nil {
		requestLogger(ctx, logger).Warn("Failed to deliver notification",
			slog.Any("userID", notification.UserID),
			slog.String("title", notification.Title),
			slog.Any("error", err),
		)
	}
}

// parseReviewAction validates a review request and returns the status it leads to.
func parseReviewAction(action string) (entity.ReviewStatus, error) {
	status, ok := entity.ReviewAction(action).Target()
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("action must be approve or reject")
	}

	return status, nil
}

// parseReviewFilter turns an optional query value into a repository filter.
func parseReviewFilter(raw string) (*entity.ReviewStatus, error) {
	if raw == "" {
		return nil, nil
	}
	status := entity.ReviewStatus(raw)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + raw)
	}

	return &status, nil
}

// parseCurrency validates a wallet currency code.
func parseCurrency(raw string) (entity.Currency, error) {
	currency := entity.Currency(raw)
	if !currency.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", raw)
	}

	return currency, nil
}

// requirePositive rejects zero and negative money amounts.
func requirePositive(amount decimal.Decimal, field string) error {
	if !amount.IsPositive() {
		return domainerrors.ErrInvalidAmount.WithDetails(field + " must be greater than zero")
	}

	return nil
}

func reviewUpdate(status entity.ReviewStatus, note string, reviewerID uuid.UUID, at time.Time) repository.ReviewUpdate {
	return repository.ReviewUpdate{
		Status:     status,
		Note:       note,
		ReviewerID: reviewerID,
		ReviewedAt: at,
	}
}

func newLocaleResolver(cfg *config.Config) *util.LocaleResolver {
	if cfg == nil || cfg.Locale == nil {
		return util.NewLocaleResolver([]string{"en"}, "en")
	}

	return util.NewLocaleResolver(cfg.Locale.Supported, cfg.Locale.Default)
}

// pickLocale returns the supported code for requested, or the default when it is blank.
func pickLocale(locales *util.LocaleResolver, requested string) (string, error) {
	if strings.TrimSpace(requested) == "" {
		return locales.Resolve("", "", ""), nil
	}
	if !locales.IsSupported(requested) {
		return "", domainerrors.ErrUnsupportedLocale.WithDetails(requested)
	}

	return locales.Resolve(requested, "", ""), nil
}
