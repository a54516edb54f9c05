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
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager     repository.TransactionManager
	activityRepo  repository.ActivityRepository
	qrcodeService service.QRCodeService
	publisher     service.EventPublisher
	retention     time.Duration
	logger        *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ActivityRepo  repository.ActivityRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	retention := time.Duration(0)
	if params.Config != nil && params.Config.Activities != nil {
		retention = params.Config.Activities.Retention
	}

	return &activityService{
		txManager:     params.TxManager,
		activityRepo:  params.ActivityRepo,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		retention:     retention,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new activity owned by creatorID.
func (srv *activityService) Create(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateActivityInput) (*entity.Activity, error) {
	srv.log(ctx).Info("Creating activity",
		slog.String("creator_id", creatorID.String()),
		slog.String("title", input.Title),
	)

	if err := validateTimeWindow(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}

	activity := &entity.Activity{
		Title:           input.Title,
		Description:     input.Description,
		LocationName:    input.LocationName,
		Location:        orb.Point{input.Longitude, input.Latitude},
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		MaxParticipants: input.MaxParticipants,
		ContactInfo:     input.ContactInfo,
		CreatedBy:       creatorID,
		Status:          entity.ActivityStatusActive,
		ExpiresAt:       input.EndsAt.Add(srv.retention),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ActivityRepo().Create(ctx, activity); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to create activity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with the creator association populated.
	return srv.Get(ctx, activity.ID)
}

// Get retrieves one activity with creator and joinees populated.
func (srv *activityService) Get(ctx context.Context, activityID uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to get activity")
	}

	return activity, nil
}

// Update modifies an activity's fields. Creator-only. Joinees hear about the
// change after the commit.
func (srv *activityService) Update(ctx context.Context, requesterID, activityID uuid.UUID, input *usecase.UpdateActivityInput) (*entity.Activity, error) {
	srv.log(ctx).Info("Updating activity",
		slog.String("requester_id", requesterID.String()),
		slog.String("activity_id", activityID.String()),
	)

	var (
		updated      *entity.Activity
		recipientIDs []uuid.UUID
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		activity, err := activityRepo.FindByIDForUpdate(ctx, activityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domainerrors.ErrActivityNotFound
			}

			return errors.Wrap(err, "failed to lock activity")
		}

		if activity.CreatedBy != requesterID {
			return domainerrors.ErrNotAuthorized
		}
		if activity.IsCancelled() {
			return domainerrors.ErrConflict.WrapMessage("activity has been cancelled")
		}

		applyActivityPatch(activity, input)

		if err := validateTimeWindow(activity.StartsAt, activity.EndsAt); err != nil {
			return err
		}
		// The retention horizon tracks the (possibly moved) end time.
		activity.ExpiresAt = activity.EndsAt.Add(srv.retention)

		if err := activityRepo.Update(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to update activity")
		}

		recipientIDs, err = activityRepo.ListParticipantIDs(ctx, activityID)
		if err != nil {
			return errors.Wrap(err, "failed to list participants")
		}

		updated = activity

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishActivityEvent(ctx, srv.log(ctx), srv.publisher, &service.ActivityEvent{
		Type:          entity.NotificationActivityUpdate,
		ActivityID:    activityID.String(),
		ActorID:       requesterID.String(),
		ActivityTitle: updated.Title,
		Message:       "\"" + updated.Title + "\" has been updated",
		RecipientIDs:  uuidStrings(recipientIDs),
	})

	return srv.Get(ctx, activityID)
}

// Cancel soft-cancels an activity. The record stays queryable by its creator
// until the retention sweep removes it; joinees are notified once.
func (srv *activityService) Cancel(ctx context.Context, requesterID, activityID uuid.UUID) error {
	srv.log(ctx).Info("Cancelling activity",
		slog.String("requester_id", requesterID.String()),
		slog.String("activity_id", activityID.String()),
	)

	var (
		cancelled    *entity.Activity
		recipientIDs []uuid.UUID
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		activity, err := activityRepo.FindByIDForUpdate(ctx, activityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domainerrors.ErrActivityNotFound
			}

			return errors.Wrap(err, "failed to lock activity")
		}

		if activity.CreatedBy != requesterID {
			return domainerrors.ErrNotAuthorized
		}
		// Cancelling twice is a no-op, not an error.
		if activity.IsCancelled() {
			return nil
		}

		now := time.Now()
		activity.Status = entity.ActivityStatusCancelled
		activity.CancelledAt = &now

		if err := activityRepo.Update(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to cancel activity")
		}

		recipientIDs, err = activityRepo.ListParticipantIDs(ctx, activityID)
		if err != nil {
			return errors.Wrap(err, "failed to list participants")
		}

		cancelled = activity

		return nil
	})
	if err != nil {
		return err
	}

	if cancelled != nil {
		publishActivityEvent(ctx, srv.log(ctx), srv.publisher, &service.ActivityEvent{
			Type:          entity.NotificationActivityCancelled,
			ActivityID:    activityID.String(),
			ActorID:       requesterID.String(),
			ActivityTitle: cancelled.Title,
			Message:       "\"" + cancelled.Title + "\" has been cancelled",
			RecipientIDs:  uuidStrings(recipientIDs),
		})
	}

	return nil
}

// List returns active activities, optionally filtered by proximity.
func (srv *activityService) List(ctx context.Context, input *usecase.ListActivitiesInput) ([]*entity.Activity, error) {
	filter := repository.ActivityFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Near {
		filter.Near = &[2]float64{input.Lng, input.Lat}
		filter.Radius = input.Radius
	}

	activities, err := srv.activityRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// ListByCreator returns a user's own activities, cancelled included.
func (srv *activityService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities by creator")
	}

	return activities, nil
}

// ListByParticipant returns the active activities a user has joined.
func (srv *activityService) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities by participant")
	}

	return activities, nil
}

// ShareQRCode renders the PNG QR code for an activity's share link.
func (srv *activityService) ShareQRCode(ctx context.Context, activityID uuid.UUID) ([]byte, error) {
	activity, err := srv.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity.IsCancelled() {
		return nil, domainerrors.ErrActivityNotFound
	}

	pngBytes, err := srv.qrcodeService.GenerateActivityQR(activityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// validateTimeWindow rejects inverted or already-ended activity windows.
func validateTimeWindow(startsAt, endsAt time.Time) error {
	if !endsAt.After(startsAt) {
		return domainerrors.ErrValidationFailed.WrapMessage("end time must be after start time")
	}
	if endsAt.Before(time.Now()) {
		return domainerrors.ErrValidationFailed.WrapMessage("activity has already ended")
	}

	return nil
}

func applyActivityPatch(activity *entity.Activity, input *usecase.UpdateActivityInput) {
	if input.Title != nil {
		activity.Title = *input.Title
	}
	if input.Description != nil {
		activity.Description = *input.Description
	}
	if input.LocationName != nil {
		activity.LocationName = *input.LocationName
	}
	if input.Latitude != nil {
		activity.Location = orb.Point{activity.Location.Lon(), *input.Latitude}
	}
	if input.Longitude != nil {
		activity.Location = orb.Point{*input.Longitude, activity.Location.Lat()}
	}
	if input.StartsAt != nil {
		activity.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		activity.EndsAt = *input.EndsAt
	}
	if input.MaxParticipants != nil {
		activity.MaxParticipants = *input.MaxParticipants
	}
	if input.ContactInfo != nil {
		activity.ContactInfo = *input.ContactInfo
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
