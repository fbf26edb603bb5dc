package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingsService implements the SettingsUsecase interface.
// Writes go straight to the database, then drop the local cache and tell the
// other instances to drop theirs.
type settingsService struct {
	txManager repository.TransactionManager
	cache     service.SettingsCache
	publisher service.EventPublisher
	source    string
	logger    *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.SettingsCache
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	source := "storefront"
	if params.Config != nil && params.Config.Env.ServiceName != "" {
		source = params.Config.Env.ServiceName
	}

	return &settingsService{
		txManager: params.TxManager,
		cache:     params.Cache,
		publisher: params.Publisher,
		source:    source,
		logger:    params.Logger,
	}
}

// Public returns the maintenance flag from the cache.
func (srv *settingsService) Public(ctx context.Context) (*usecase.PublicSettings, error) {
	settings, err := srv.cache.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	return &usecase.PublicSettings{
		MaintenanceMode:    settings.MaintenanceMode,
		MaintenanceMessage: settings.MaintenanceMessage,
	}, nil
}

// Get reads the settings row, bypassing the cache.
func (srv *settingsService) Get(ctx context.Context) (*entity.SiteSettings, error) {
	var settings *entity.SiteSettings
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSettingRepository().Get(ctx)
		settings = found

		return errors.Wrap(err, "failed to load settings")
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// Update saves the non-nil fields and invalidates the maintenance cache everywhere.
func (srv *settingsService) Update(ctx context.Context, actorID uuid.UUID, input *usecase.UpdateSettingsInput) (*entity.SiteSettings, error) {
	var settings *entity.SiteSettings
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewSettingRepository()

		current, err := repo.Get(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load settings")
		}
		if input.MaintenanceMode != nil {
			current.MaintenanceMode = *input.MaintenanceMode
		}
		if input.MaintenanceMessage != nil {
			current.MaintenanceMessage = strings.TrimSpace(*input.MaintenanceMessage)
		}
		if input.SupportEmail != nil {
			current.SupportEmail = strings.TrimSpace(*input.SupportEmail)
		}
		current.UpdatedBy = &actorID
		current.UpdatedAt = time.Now()

		if err := repo.Save(ctx, current); err != nil {
			return errors.Wrap(err, "failed to save settings")
		}
		settings = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.cache.Invalidate()

	log := requestLogger(ctx, srv.logger)
	log.Info("Site settings updated", slog.Any("actorID", actorID), slog.Bool("maintenance", settings.MaintenanceMode))

	event := &service.CacheEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventSettingsUpdated,
		Source:     srv.source,
		OccurredAt: settings.UpdatedAt,
	}
	if err := srv.publisher.PublishCacheEvent(ctx, event); err != nil {
		// Other instances fall back to TTL expiry.
		log.Warn("Failed to publish settings invalidation", slog.Any("error", err))
	}

	return settings, nil
}

// HandleEvent applies an invalidation pushed by another instance.
func (srv *settingsService) HandleEvent(ctx context.Context, event *service.CacheEvent) error {
	if event == nil {
		return errors.New("nil cache event")
	}

	log := requestLogger(ctx, srv.logger)
	switch event.Type {
	case constants.EventSettingsUpdated:
		srv.cache.Invalidate()
		log.Info("Settings cache invalidated by event", slog.String("source", event.Source), slog.String("requestID", event.RequestID))
	default:
		log.Debug("Ignoring cache event", slog.String("type", event.Type))
	}

	return nil
}
