package pubsub

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// newGooglePublisher connects to the topic and fails fast when it does not exist,
// so a typo in topicId surfaces at boot instead of on the first settings change.
func newGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (*googlePublisher, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", cfg.TopicID)
	}

	logger.Info("[Events] Publishing to Google Pub/Sub", slog.String("topic", topic))

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishCacheEvent(ctx context.Context, event *service.CacheEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	id, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.Debug("[Events] Published",
		slog.String("type", event.Type),
		slog.String("message_id", id),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
