package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events. Peers then pick up setting changes when their cache expires.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCacheEvent(ctx context.Context, event *service.CacheEvent) error {
	p.logger.Debug("[Events] No publisher configured, peers refresh on cache expiry",
		slog.String("type", event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for the configured provider.
// No provider means a no-op publisher rather than an error.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("[Events] Pub/Sub not configured, settings propagate by cache TTL only")

		return &noopPublisher{logger: logger}, nil
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := open(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("[Events] Closing publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func validateConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub: localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub: projectId and topicId are required for the google provider")
		}
	default:
		return errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
	}

	return nil
}

func open(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("[Events] Publishing to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return newLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	publisher, err := newGooglePublisher(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return publisher, nil
}
