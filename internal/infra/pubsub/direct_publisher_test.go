package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"mapnmeet/internal/domain/entity"
	"mapnmeet/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectPublisher_DeliversToHandler(t *testing.T) {
	var (
		mu       sync.Mutex
		received []*service.ActivityEvent
	)
	handler := func(ctx context.Context, event *service.ActivityEvent) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, event)

		return nil
	}

	publisher := NewDirectPublisher(handler, slog.Default())
	event := &service.ActivityEvent{
		Type:         entity.NotificationNewParticipant,
		ActivityID:   "activity-1",
		RecipientIDs: []string{"user-1"},
	}

	require.NoError(t, publisher.PublishActivityEvent(context.Background(), event))
	// Close waits for the in-flight fan-out goroutine.
	require.NoError(t, publisher.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, event, received[0])
}

func TestDirectPublisher_DropsAfterClose(t *testing.T) {
	var (
		mu    sync.Mutex
		count int
	)
	handler := func(ctx context.Context, event *service.ActivityEvent) error {
		mu.Lock()
		defer mu.Unlock()
		count++

		return nil
	}

	publisher := NewDirectPublisher(handler, slog.Default())
	require.NoError(t, publisher.Close())

	require.NoError(t, publisher.PublishActivityEvent(context.Background(), &service.ActivityEvent{}))
	require.NoError(t, publisher.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}
