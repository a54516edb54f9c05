package impl

import (
	"context"
	"testing"
	"time"

	"mapnmeet/config"
	"mapnmeet/internal/domain/entity"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/repository"
	"mapnmeet/internal/domain/service"
	mockRepo "mapnmeet/internal/mocks/repository"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	t                *testing.T
	service          usecase.NotificationUsecase
	txManager        *mockRepo.MockTransactionManager
	notificationRepo *mockRepo.MockNotificationRepository
	retentionTTL     time.Duration
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	cfg := newTestConfig()
	service := NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: notificationRepo,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		t:                t,
		service:          service,
		txManager:        txManager,
		notificationRepo: notificationRepo,
		retentionTTL:     cfg.Notifications.TTL,
	}
}

func (fx notificationServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestNotificationService_List_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	fx.notificationRepo.EXPECT().
		ListUnreadByUser(ctx, userID, 10, 10).
		Return(notifications, int64(25), nil)

	page, err := fx.service.List(ctx, userID, 2, 10)

	require.NoError(t, err)
	assert.Equal(t, notifications, page.Notifications)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestNotificationService_List_Defaults(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Page 0 and limit 0 fall back to the first page at the configured size.
	fx.notificationRepo.EXPECT().
		ListUnreadByUser(ctx, userID, 10, 0).
		Return([]*entity.Notification{}, int64(0), nil)

	page, err := fx.service.List(ctx, userID, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 0, page.TotalPages)
}

func TestNotificationService_List_NoConfiguredPageSize(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: notificationRepo,
		Config:           &config.Config{},
		Logger:           newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	// With no notifications section configured the limit clamps to the
	// fallback instead of dividing the page count by zero.
	notificationRepo.EXPECT().
		ListUnreadByUser(ctx, userID, fallbackPageSize, 0).
		Return([]*entity.Notification{{ID: uuid.New(), UserID: userID}}, int64(1), nil)

	page, err := svc.List(ctx, userID, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, fallbackPageSize, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID, Read: true}

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, notification.ID, userID, mock.AnythingOfType("time.Time")).
		Return(notification, nil)

	got, err := fx.service.MarkRead(ctx, notification.ID, userID)

	require.NoError(t, err)
	assert.Equal(t, notification, got)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, id, userID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrNotificationNotFound)

	got, err := fx.service.MarkRead(ctx, id, userID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(int64(4), nil)

	count, err := fx.service.MarkAllRead(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationService_Delete_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrNotificationNotFound)

	err := fx.service.Delete(ctx, id, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MassDelete_ByType(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	read := true
	notificationType := "activity_update"
	expectedType := entity.NotificationActivityUpdate

	fx.notificationRepo.EXPECT().
		DeleteByFilter(ctx, userID, repository.NotificationFilter{Read: &read, Type: &expectedType}).
		Return(int64(7), nil)

	count, err := fx.service.MassDelete(ctx, userID, &usecase.MassDeleteInput{Read: &read, Type: &notificationType})

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestNotificationService_MassDelete_UnknownType(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationType := "carrier_pigeon"

	count, err := fx.service.MassDelete(ctx, userID, &usecase.MassDeleteInput{Type: &notificationType})

	assert.Zero(t, count)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_FanOut_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	activityID := uuid.New()
	actorID := uuid.New()
	recipients := []uuid.UUID{uuid.New(), uuid.New()}
	event := &service.ActivityEvent{
		Type:          entity.NotificationNewParticipant,
		ActivityID:    activityID.String(),
		ActorID:       actorID.String(),
		ActivityTitle: "Evening Basketball",
		Message:       "Someone joined your activity",
		RecipientIDs:  []string{recipients[0].String(), recipients[1].String()},
	}

	var inserted []*entity.Notification

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NotificationRepo().Return(mockNotificationRepo)
		mockNotificationRepo.EXPECT().
			CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
			Run(func(ctx context.Context, notifications []*entity.Notification) {
				inserted = notifications
			}).
			Return(nil)
	})

	err := fx.service.FanOut(ctx, event)

	require.NoError(t, err)
	require.Len(t, inserted, 2)
	for i, notification := range inserted {
		assert.Equal(t, recipients[i], notification.UserID)
		assert.Equal(t, entity.NotificationNewParticipant, notification.Type)
		require.NotNil(t, notification.ActivityID)
		assert.Equal(t, activityID, *notification.ActivityID)
		assert.Nil(t, notification.FollowerID)
		assert.Equal(t, "Someone joined your activity", notification.Message)
	}
}

func TestNotificationService_FanOut_NewFollower(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	recipientID := uuid.New()
	event := &service.ActivityEvent{
		Type:         entity.NotificationNewFollower,
		ActorID:      actorID.String(),
		Message:      "Test Student started following you",
		RecipientIDs: []string{recipientID.String()},
	}

	var inserted []*entity.Notification

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NotificationRepo().Return(mockNotificationRepo)
		mockNotificationRepo.EXPECT().
			CreateBatch(ctx, mock.AnythingOfType("[]*entity.Notification")).
			Run(func(ctx context.Context, notifications []*entity.Notification) {
				inserted = notifications
			}).
			Return(nil)
	})

	err := fx.service.FanOut(ctx, event)

	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Nil(t, inserted[0].ActivityID)
	require.NotNil(t, inserted[0].FollowerID)
	assert.Equal(t, actorID, *inserted[0].FollowerID)
}

func TestNotificationService_FanOut_SkipsInvalidRecipients(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	event := &service.ActivityEvent{
		Type:         entity.NotificationActivityCancelled,
		ActivityID:   uuid.New().String(),
		ActorID:      uuid.New().String(),
		Message:      "cancelled",
		RecipientIDs: []string{"not-a-uuid"},
	}

	// Every recipient is invalid, so nothing reaches the store.
	err := fx.service.FanOut(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_FanOut_UnknownType(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	event := &service.ActivityEvent{
		Type:         entity.NotificationType("carrier_pigeon"),
		RecipientIDs: []string{uuid.New().String()},
	}

	err := fx.service.FanOut(ctx, event)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_PurgeExpired(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	now := time.Now()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().NotificationRepo().Return(mockNotificationRepo)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)

		mockNotificationRepo.EXPECT().PurgeExpired(ctx, now.Add(-fx.retentionTTL)).Return(int64(12), nil)
		mockActivityRepo.EXPECT().PurgeExpired(ctx, now).Return(int64(2), nil)
	})

	result, err := fx.service.PurgeExpired(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Notifications)
	assert.Equal(t, int64(2), result.Activities)
}

func TestNotificationService_PurgeExpired_RollsBack(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	now := time.Now()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NotificationRepo().Return(mockNotificationRepo)
		mockNotificationRepo.EXPECT().
			PurgeExpired(ctx, now.Add(-fx.retentionTTL)).
			Return(int64(0), errors.New("db error"))
	})

	result, err := fx.service.PurgeExpired(ctx, now)

	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to purge notifications")
}
