// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

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

// participationService implements the ParticipationUsecase interface.
type participationService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ParticipationServiceParams holds dependencies for ParticipationService, injected by Fx.
type ParticipationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewParticipationService is the constructor for participationService.
func NewParticipationService(params ParticipationServiceParams) usecase.ParticipationUsecase {
	return &participationService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *participationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Join adds the user to the activity's joinees. The activity row is locked
// for the whole unit so the capacity check and the membership insert cannot
// interleave with a concurrent join: the last seat goes to exactly one
// caller, the rest see ErrActivityFull.
func (srv *participationService) Join(ctx context.Context, userID, activityID uuid.UUID) error {
	srv.log(ctx).Info("Joining activity",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activityID.String()),
	)

	var joined *entity.Activity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		activity, err := activityRepo.FindByIDForUpdate(ctx, activityID)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domainerrors.ErrActivityNotFound
			}

			return errors.Wrap(err, "failed to lock activity")
		}

		// A cancelled activity is gone as far as joining is concerned.
		if activity.IsCancelled() {
			return domainerrors.ErrActivityNotFound
		}

		if activity.CreatedBy == userID {
			return domainerrors.ErrOwnerCannotJoin
		}

		alreadyJoined, err := activityRepo.IsParticipant(ctx, activityID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to check participation")
		}
		if alreadyJoined {
			return domainerrors.ErrAlreadyJoined
		}

		// Capacity check under the row lock, not from the handler's stale read.
		if activity.HasCapacityLimit() {
			count, err := activityRepo.CountParticipants(ctx, activityID)
			if err != nil {
				return errors.Wrap(err, "failed to count participants")
			}
			if count >= activity.MaxParticipants {
				return domainerrors.ErrActivityFull
			}
		}

		if err := activityRepo.AddParticipant(ctx, activityID, userID); err != nil {
			if errors.Is(err, repository.ErrDuplicateParticipant) {
				return domainerrors.ErrAlreadyJoined
			}
			// Stale session for a deleted user; the activity itself is
			// locked and known to exist at this point.
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to add participant")
		}

		joined = activity

		return nil
	})
	if err != nil {
		return err
	}

	// Tell the creator, after the membership is durable. Best-effort.
	publishActivityEvent(ctx, srv.log(ctx), srv.publisher, &service.ActivityEvent{
		Type:          entity.NotificationNewParticipant,
		ActivityID:    activityID.String(),
		ActorID:       userID.String(),
		ActivityTitle: joined.Title,
		Message:       "Someone joined your activity \"" + joined.Title + "\"",
		RecipientIDs:  []string{joined.CreatedBy.String()},
	})

	return nil
}

// Leave removes the user from the activity's joinees. Leaving a cancelled
// activity is allowed so joinee lists can still be cleaned up.
func (srv *participationService) Leave(ctx context.Context, userID, activityID uuid.UUID) error {
	srv.log(ctx).Info("Leaving activity",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", activityID.String()),
	)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		if _, err := activityRepo.FindByIDForUpdate(ctx, activityID); err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domainerrors.ErrActivityNotFound
			}

			return errors.Wrap(err, "failed to lock activity")
		}

		removed, err := activityRepo.RemoveParticipant(ctx, activityID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to remove participant")
		}
		if !removed {
			return domainerrors.ErrNotJoined
		}

		return nil
	})
}

// RemoveParticipant lets the activity's creator remove another joinee.
func (srv *participationService) RemoveParticipant(ctx context.Context, requesterID, activityID, targetUserID uuid.UUID) error {
	srv.log(ctx).Info("Removing participant",
		slog.String("requester_id", requesterID.String()),
		slog.String("activity_id", activityID.String()),
		slog.String("target_user_id", targetUserID.String()),
	)

	var removed *entity.Activity

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

		wasJoined, err := activityRepo.RemoveParticipant(ctx, activityID, targetUserID)
		if err != nil {
			return errors.Wrap(err, "failed to remove participant")
		}
		if !wasJoined {
			return domainerrors.ErrNotJoined
		}

		removed = activity

		return nil
	})
	if err != nil {
		return err
	}

	publishActivityEvent(ctx, srv.log(ctx), srv.publisher, &service.ActivityEvent{
		Type:          entity.NotificationActivityUpdate,
		ActivityID:    activityID.String(),
		ActorID:       requesterID.String(),
		ActivityTitle: removed.Title,
		Message:       "You were removed from \"" + removed.Title + "\"",
		RecipientIDs:  []string{targetUserID.String()},
	})

	return nil
}

