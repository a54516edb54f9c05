package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mapnmeet/internal/domain/service"
)

// directPublisher hands events to the fan-out handler on a goroutine. It
// trades broker durability for zero infrastructure, which is the right
// trade for a single-binary deployment: an event lost to a crash only
// costs a notification, never the operation that produced it.
type directPublisher struct {
	handler DirectHandler
	logger  *slog.Logger

	wg     sync.WaitGroup
	closed chan struct{}
	once   sync.Once
}

// handleTimeout bounds a single in-process fan-out.
const handleTimeout = 30 * time.Second

// NewDirectPublisher creates an in-process publisher backed by the handler.
func NewDirectPublisher(handler DirectHandler, logger *slog.Logger) service.EventPublisher {
	return &directPublisher{
		handler: handler,
		logger:  logger,
		closed:  make(chan struct{}),
	}
}

// PublishActivityEvent schedules the event for in-process fan-out. The
// caller's context is not reused: the triggering request finishes
// independently of the fan-out.
func (p *directPublisher) PublishActivityEvent(_ context.Context, event *service.ActivityEvent) error {
	select {
	case <-p.closed:
		return nil
	default:
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()

		if err := p.handler(ctx, event); err != nil {
			p.logger.Error("[DirectPubSub] Event fan-out failed",
				slog.String("activity_id", event.ActivityID),
				slog.String("type", string(event.Type)),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close waits for in-flight fan-outs to finish.
func (p *directPublisher) Close() error {
	p.once.Do(func() {
		close(p.closed)
	})
	p.wg.Wait()

	return nil
}
