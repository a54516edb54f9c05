package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mapnmeet/internal/delivery/context"
	"mapnmeet/internal/domain/service"

	"github.com/codeGROOVE-dev/retry"
)

// publishActivityEvent publishes an activity event with a few quick retries.
// Failures are logged and swallowed: notifications never undo the operation
// that caused them.
func publishActivityEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.ActivityEvent) {
	if len(event.RecipientIDs) == 0 {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	err := retry.Do(
		func() error {
			return publisher.PublishActivityEvent(ctx, event)
		},
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		logger.Error("Failed to publish activity event",
			slog.String("activity_id", event.ActivityID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
