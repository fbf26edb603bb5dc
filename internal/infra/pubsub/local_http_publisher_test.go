package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishCacheEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishCacheEvent(context.Background(), &service.CacheEvent{
		RequestID: "req-1",
		Type:      constants.EventSettingsUpdated,
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventSettingsUpdated, received.Message.Attributes["type"])

	event, err := received.Decode()
	require.NoError(t, err)
	assert.Equal(t, constants.EventSettingsUpdated, event.Type)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishCacheEvent(context.Background(), &service.CacheEvent{Type: constants.EventSettingsUpdated})
	assert.Error(t, err)
}

func TestPushMessage_DecodeInvalid(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%not-base64"

	_, err := msg.Decode()
	assert.Error(t, err)
}

func TestEncodeEvent_Attributes(t *testing.T) {
	event := &service.CacheEvent{Type: constants.EventSettingsUpdated}

	data, attrs, err := encodeEvent(event)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{attrType: constants.EventSettingsUpdated}, attrs)
	assert.False(t, event.OccurredAt.IsZero())
	assert.Contains(t, string(data), `"type":"settings.updated"`)
}
