package impl

import (
	"context"
	"log/slog"
	"time"

	"mapnmeet/config"
	deliverycontext "mapnmeet/internal/delivery/context"
	"mapnmeet/internal/domain/entity"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/repository"
	"mapnmeet/internal/domain/service"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fallbackPageSize bounds inbox pages when no page size is configured.
const fallbackPageSize = 10

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	retentionTTL     time.Duration
	defaultPageSize  int
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	retentionTTL := time.Duration(0)
	defaultPageSize := 0
	if params.Config != nil && params.Config.Notifications != nil {
		retentionTTL = params.Config.Notifications.TTL
		defaultPageSize = params.Config.Notifications.PageSize
	}

	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		retentionTTL:     retentionTTL,
		defaultPageSize:  defaultPageSize,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of the user's unread notifications, newest first.
// Read notifications never appear: reading one removes it from the inbox and
// starts its retention clock.
func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, page, limit int) (*usecase.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = srv.defaultPageSize
	}
	// The configured page size can itself be absent; a zero limit would
	// divide by zero in the page count below.
	if limit <= 0 {
		limit = fallbackPageSize
	}

	offset := (page - 1) * limit

	notifications, total, err := srv.notificationRepo.ListUnreadByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.NotificationPage{
		Notifications: notifications,
		Page:          page,
		Limit:         limit,
		Total:         total,
		TotalPages:    totalPages,
	}, nil
}

// MarkRead marks one notification read and stamps its read time.
func (srv *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.MarkRead(ctx, id, userID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to mark notification read")
	}

	return notification, nil
}

// MarkAllRead marks all the user's unread notifications read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.MarkAllRead(ctx, userID, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	srv.log(ctx).Info("Marked notifications read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", count),
	)

	return count, nil
}

// Delete removes one of the user's notifications.
func (srv *notificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.notificationRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// MassDelete removes the user's notifications matching the filter.
func (srv *notificationService) MassDelete(ctx context.Context, userID uuid.UUID, input *usecase.MassDeleteInput) (int64, error) {
	filter := repository.NotificationFilter{Read: input.Read}

	if input.Type != nil {
		notificationType := entity.NotificationType(*input.Type)
		if !notificationType.Valid() {
			return 0, domainerrors.ErrValidationFailed.WrapMessage("unknown notification type")
		}
		filter.Type = &notificationType
	}

	count, err := srv.notificationRepo.DeleteByFilter(ctx, userID, filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mass delete notifications")
	}

	srv.log(ctx).Info("Mass deleted notifications",
		slog.String("user_id", userID.String()),
		slog.Int64("count", count),
	)

	return count, nil
}

// FanOut materializes an activity event into one unread notification row per
// recipient, in a single batch insert. Invoked asynchronously by whichever
// event transport is configured.
func (srv *notificationService) FanOut(ctx context.Context, event *service.ActivityEvent) error {
	if !event.Type.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown notification type")
	}

	var activityID *uuid.UUID
	if event.ActivityID != "" {
		parsed, err := uuid.Parse(event.ActivityID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid activity id")
		}
		activityID = &parsed
	}

	var followerID *uuid.UUID
	if event.Type == entity.NotificationNewFollower {
		parsed, err := uuid.Parse(event.ActorID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid actor id")
		}
		followerID = &parsed
	}

	notifications := make([]*entity.Notification, 0, len(event.RecipientIDs))
	for _, recipient := range event.RecipientIDs {
		recipientID, err := uuid.Parse(recipient)
		if err != nil {
			srv.log(ctx).Warn("Skipping invalid recipient id",
				slog.String("recipient_id", recipient),
			)

			continue
		}

		notifications = append(notifications, &entity.Notification{
			UserID:     recipientID,
			Type:       event.Type,
			ActivityID: activityID,
			FollowerID: followerID,
			Message:    event.Message,
		})
	}
	if len(notifications) == 0 {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NotificationRepo().CreateBatch(ctx, notifications)
	})
	if err != nil {
		return errors.Wrap(err, "failed to fan out notifications")
	}

	srv.log(ctx).Info("Fanned out notifications",
		slog.String("type", string(event.Type)),
		slog.Int("count", len(notifications)),
	)

	return nil
}

// PurgeExpired removes read notifications past the retention window and
// activities past their expiry horizon.
func (srv *notificationService) PurgeExpired(ctx context.Context, now time.Time) (*usecase.PurgeResult, error) {
	result := &usecase.PurgeResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purgedNotifications, err := repoFactory.NotificationRepo().PurgeExpired(ctx, now.Add(-srv.retentionTTL))
		if err != nil {
			return errors.Wrap(err, "failed to purge notifications")
		}
		result.Notifications = purgedNotifications

		purgedActivities, err := repoFactory.ActivityRepo().PurgeExpired(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to purge activities")
		}
		result.Activities = purgedActivities

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Notifications > 0 || result.Activities > 0 {
		srv.log(ctx).Info("Retention sweep completed",
			slog.Int64("notifications", result.Notifications),
			slog.Int64("activities", result.Activities),
		)
	}

	return result, nil
}
