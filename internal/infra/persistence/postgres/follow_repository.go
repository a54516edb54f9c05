package postgres

import (
	"context"

	"mapnmeet/internal/domain/entity"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/repository"
	"mapnmeet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followRepository implements repository.FollowRepository. Each follow edge
// is one row; the composite primary key rules out duplicate edges.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the follow edge.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := &model.UserFollowModel{
		FollowerID: follow.FollowerID,
		FolloweeID: follow.FolloweeID,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFollow
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	follow.CreatedAt = followM.CreatedAt

	return nil
}

// Delete removes the follow edge if present.
func (repo *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.UserFollowModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete follow")
	}

	return result.RowsAffected > 0, nil
}

// Exists reports whether follower currently follows followee.
func (repo *followRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return count > 0, nil
}

// ListFollowers returns the users following the given user.
func (repo *followRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	var userMs []model.UserModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN user_follows uf ON uf.follower_id = users.id").
		Where("uf.followee_id = ?", userID).
		Order("uf.created_at DESC").
		Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return toUserDomainList(userMs), nil
}

// ListFollowing returns the users the given user follows.
func (repo *followRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	var userMs []model.UserModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN user_follows uf ON uf.followee_id = users.id").
		Where("uf.follower_id = ?", userID).
		Order("uf.created_at DESC").
		Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return toUserDomainList(userMs), nil
}

// Counts returns the follower and following counts for a user.
func (repo *followRepository) Counts(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	var followers, following int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("followee_id = ?", userID).
		Count(&followers).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count followers")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserFollowModel{}).
		Where("follower_id = ?", userID).
		Count(&following).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count following")
	}

	return followers, following, nil
}

func toUserDomainList(userMs []model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users
}
