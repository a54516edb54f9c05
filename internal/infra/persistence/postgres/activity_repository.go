package postgres

import (
	"context"
	"time"

	"mapnmeet/internal/domain/entity"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/repository"
	"mapnmeet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// haversineSQL computes the great-circle distance in meters between an
// activity row and a query point. Earth radius 6371000m, arguments are
// lon, lat of the query point.
const haversineSQL = `6371000 * acos(least(1.0, ` +
	`cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + ` +
	`sin(radians(?)) * sin(radians(latitude))))`

// activityRepository implements repository.ActivityRepository using GORM.
// Membership lives in the activity_participants join table; the composite
// primary key there is what makes duplicate joins impossible at the
// storage level.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required activity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// FindByID retrieves an activity with its creator and joinees populated.
func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate locks the activity row for the surrounding transaction.
// Joinees are loaded in a follow-up query because FOR UPDATE cannot span
// the preload joins.
func (repo *activityRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to lock activity")
	}

	return toActivityDomain(&activityM), nil
}

func (repo *activityRepository) findOne(tx *gorm.DB, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel

	if err := tx.
		Preload("Creator").
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at ASC")
		}).
		Preload("Participants.User").
		Where("id = ?", id).
		First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// Update modifies an existing activity's own fields. Membership rows are
// managed through AddParticipant/RemoveParticipant only.
func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", activity.ID).
		Updates(map[string]any{
			"title":            activityM.Title,
			"description":      activityM.Description,
			"location_name":    activityM.LocationName,
			"longitude":        activityM.Longitude,
			"latitude":         activityM.Latitude,
			"starts_at":        activityM.StartsAt,
			"ends_at":          activityM.EndsAt,
			"max_participants": activityM.MaxParticipants,
			"contact_info":     activityM.ContactInfo,
			"status":           activityM.Status,
			"cancelled_at":     activityM.CancelledAt,
			"expires_at":       activityM.ExpiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// ListActive returns non-cancelled activities matching the filter, soonest
// start first. When a Near point is given only activities within Radius
// meters of it are returned, ordered by distance instead.
func (repo *activityRepository) ListActive(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Preload("Creator").
		Preload("Participants.User").
		Where("status = ?", string(entity.ActivityStatusActive))

	if filter.Near != nil {
		lon, lat := filter.Near[0], filter.Near[1]
		tx = tx.
			Where(haversineSQL+" <= ?", lat, lon, lat, filter.Radius).
			Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL:  haversineSQL,
				Vars: []any{lat, lon, lat},
			}})
	} else {
		tx = tx.Order("starts_at ASC")
	}

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	var activityMs []model.ActivityModel
	if err := tx.Find(&activityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active activities")
	}

	return toActivityDomainList(activityMs), nil
}

// ListByCreator returns all activities created by a user, cancelled included,
// newest first.
func (repo *activityRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Activity, error) {
	var activityMs []model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Preload("Creator").
		Preload("Participants.User").
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&activityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities by creator")
	}

	return toActivityDomainList(activityMs), nil
}

// ListByParticipant returns the non-cancelled activities a user has joined,
// soonest start first.
func (repo *activityRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var activityMs []model.ActivityModel

	if err := repo.db.WithContext(ctx).
		Preload("Creator").
		Preload("Participants.User").
		Joins("JOIN activity_participants ap ON ap.activity_id = activities.id").
		Where("ap.user_id = ? AND activities.status = ?", userID, string(entity.ActivityStatusActive)).
		Order("activities.starts_at ASC").
		Find(&activityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities by participant")
	}

	return toActivityDomainList(activityMs), nil
}

// CountParticipants returns the current size of the joinee set.
func (repo *activityRepository) CountParticipants(ctx context.Context, activityID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityParticipantModel{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count participants")
	}

	return int(count), nil
}

// IsParticipant reports whether the user has joined the activity.
func (repo *activityRepository) IsParticipant(ctx context.Context, activityID, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityParticipantModel{}).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check participation")
	}

	return count > 0, nil
}

// AddParticipant inserts the membership row. The composite primary key on
// the join table turns a racing duplicate join into ErrDuplicateParticipant
// instead of a second row.
func (repo *activityRepository) AddParticipant(ctx context.Context, activityID, userID uuid.UUID) error {
	participantM := &model.ActivityParticipantModel{
		ActivityID: activityID,
		UserID:     userID,
		JoinedAt:   time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(participantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateParticipant
		}
		// The caller holds a FOR UPDATE lock on the activity row, so the
		// only reference that can still fail is user_id: a session token
		// outliving its deleted user.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add participant")
	}

	return nil
}

// RemoveParticipant deletes the membership row if present.
func (repo *activityRepository) RemoveParticipant(ctx context.Context, activityID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Delete(&model.ActivityParticipantModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove participant")
	}

	return result.RowsAffected > 0, nil
}

// ListParticipantIDs returns the IDs of all joinees of an activity.
func (repo *activityRepository) ListParticipantIDs(ctx context.Context, activityID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityParticipantModel{}).
		Where("activity_id = ?", activityID).
		Order("joined_at ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list participant ids")
	}

	return ids, nil
}

// PurgeExpired hard-deletes activities past their retention horizon. The
// join table rows go with them via ON DELETE CASCADE.
func (repo *activityRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.ActivityModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge expired activities")
	}

	return result.RowsAffected, nil
}

func toActivityDomainList(activityMs []model.ActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(activityMs))
	for i := range activityMs {
		activities = append(activities, toActivityDomain(&activityMs[i]))
	}

	return activities
}
