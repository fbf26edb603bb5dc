package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// SettingsUsecase reads and writes the site-wide settings row.
type SettingsUsecase interface {
	Public(ctx context.Context) (*PublicSettings, error)
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Update(ctx context.Context, actorID uuid.UUID, input *UpdateSettingsInput) (*entity.SiteSettings, error)
	HandleEvent(ctx context.Context, event *service.CacheEvent) error
}

// PublicSettings is what anonymous visitors may see.
type PublicSettings struct {
	MaintenanceMode    bool   `json:"maintenanceMode"`
	MaintenanceMessage string `json:"maintenanceMessage,omitempty"`
}

// UpdateSettingsInput is a partial settings update.
type UpdateSettingsInput struct {
	MaintenanceMode    *bool   `json:"maintenanceMode,omitempty"`
	MaintenanceMessage *string `json:"maintenanceMessage,omitempty" validate:"omitempty,max=1000"`
	SupportEmail       *string `json:"supportEmail,omitempty" validate:"omitempty,email"`
}
