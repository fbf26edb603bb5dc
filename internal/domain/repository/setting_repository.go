package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingRepository persists the single site settings row.
type SettingRepository interface {
	// Get returns the stored settings, or zero-value settings when none were saved yet.
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Save(ctx context.Context, settings *entity.SiteSettings) error
}
