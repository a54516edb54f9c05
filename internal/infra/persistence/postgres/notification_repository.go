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
)

// notificationRepository implements repository.NotificationRepository.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a single notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// CreateBatch persists multiple notifications in one insert. A fan-out to
// many recipients is one statement, not N.
func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationMs := make([]*model.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		notificationMs = append(notificationMs, fromNotificationDomain(n))
	}

	if err := repo.db.WithContext(ctx).Create(&notificationMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	for i, n := range notifications {
		n.ID = notificationMs[i].ID
		n.CreatedAt = notificationMs[i].CreatedAt
		n.UpdatedAt = notificationMs[i].UpdatedAt
	}

	return nil
}

// ListUnreadByUser returns a page of the user's unread notifications, newest
// first, along with the total unread count.
func (repo *notificationRepository) ListUnreadByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count unread notifications")
	}

	tx := base.Session(&gorm.Session{}).Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}

	var notificationMs []model.NotificationModel
	if err := tx.Find(&notificationMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list unread notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationMs))
	for i := range notificationMs {
		notifications = append(notifications, toNotificationDomain(&notificationMs[i]))
	}

	return notifications, total, nil
}

// MarkRead flips the read flag of one notification owned by the user.
// Marking an already-read notification is a no-op that still returns the row.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, readAt time.Time) (*entity.Notification, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ? AND read = ?", id, userID, false).
		Updates(map[string]any{"read": true, "read_at": readAt})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}

	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to reload notification")
	}

	return toNotificationDomain(&notificationM), nil
}

// MarkAllRead flips the read flag of all the user's unread notifications.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]any{"read": true, "read_at": readAt})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notifications read")
	}

	return result.RowsAffected, nil
}

// Delete removes one notification owned by the user.
func (repo *notificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteByFilter removes the user's notifications matching the filter.
func (repo *notificationRepository) DeleteByFilter(ctx context.Context, userID uuid.UUID, filter repository.NotificationFilter) (int64, error) {
	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Read != nil {
		tx = tx.Where("read = ?", *filter.Read)
	}
	if filter.Type != nil {
		tx = tx.Where("type = ?", string(*filter.Type))
	}

	result := tx.Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notifications")
	}

	return result.RowsAffected, nil
}

// PurgeExpired removes read notifications whose ReadAt is older than the
// cutoff. Unread notifications are never purged.
func (repo *notificationRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("read = ? AND read_at IS NOT NULL AND read_at <= ?", true, cutoff).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge read notifications")
	}

	return result.RowsAffected, nil
}
