package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	attrType      = "type"
	attrRequestID = "request_id"

	localSubscription = "projects/local/subscriptions/storefront-cache"
)

// PushMessage is the body Pub/Sub posts to a push subscription endpoint.
// The local publisher produces the same shape so one handler serves both.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Decode extracts the cache event carried in the base64 data field.
func (m *PushMessage) Decode() (*service.CacheEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	var event service.CacheEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal cache event")
	}

	return &event, nil
}

// encodeEvent stamps the event and returns its payload plus the attributes
// subscribers filter on.
func encodeEvent(event *service.CacheEvent) ([]byte, map[string]string, error) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attrs := map[string]string{attrType: event.Type}
	if event.RequestID != "" {
		attrs[attrRequestID] = event.RequestID
	}

	return data, attrs, nil
}
