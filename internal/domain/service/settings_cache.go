package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsCache serves site settings from memory for a bounded time.
type SettingsCache interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Invalidate()
}
