package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mapnmeet/internal/domain/entity"
	"mapnmeet/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PushEnvelope(t *testing.T) {
	var envelope PubSubPushMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := &service.ActivityEvent{
		RequestID:    "req-1",
		Type:         entity.NotificationActivityUpdate,
		ActivityID:   "activity-1",
		Message:      "updated",
		RecipientIDs: []string{"user-1", "user-2"},
	}

	require.NoError(t, publisher.PublishActivityEvent(context.Background(), event))

	assert.Equal(t, "activity-1", envelope.Message.Attributes["activity_id"])
	assert.Equal(t, "activity_update", envelope.Message.Attributes["event_type"])
	assert.Equal(t, "req-1", envelope.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	require.NoError(t, err)

	var decoded service.ActivityEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.PublishActivityEvent(context.Background(), &service.ActivityEvent{ActivityID: "activity-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 503")
}
