package impl

import (
	"context"
	"testing"
	"time"

	"mapnmeet/internal/domain/entity"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/repository"
	"mapnmeet/internal/domain/service"
	mockRepo "mapnmeet/internal/mocks/repository"
	mockService "mapnmeet/internal/mocks/service"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	t             *testing.T
	service       usecase.ActivityUsecase
	txManager     *mockRepo.MockTransactionManager
	activityRepo  *mockRepo.MockActivityRepository
	qrcodeService *mockService.MockQRCodeService
	publisher     *mockService.MockEventPublisher
	retention     time.Duration
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)
	cfg := newTestConfig()
	service := NewActivityService(ActivityServiceParams{
		TxManager:     txManager,
		ActivityRepo:  activityRepo,
		QRCodeService: qrcodeService,
		Publisher:     publisher,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return activityServiceFixtures{
		t:             t,
		service:       service,
		txManager:     txManager,
		activityRepo:  activityRepo,
		qrcodeService: qrcodeService,
		publisher:     publisher,
		retention:     cfg.Activities.Retention,
	}
}

func (fx activityServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func (fx activityServiceFixtures) capturePublished() *[]*service.ActivityEvent {
	var events []*service.ActivityEvent
	fx.publisher.EXPECT().
		PublishActivityEvent(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(ctx context.Context, event *service.ActivityEvent) {
			events = append(events, event)
		}).
		Return(nil)

	return &events
}

func futureWindow() (time.Time, time.Time) {
	starts := time.Now().Add(time.Hour)

	return starts, starts.Add(2 * time.Hour)
}

func TestActivityService_Create_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	starts, ends := futureWindow()
	input := &usecase.CreateActivityInput{
		Title:           "Evening Basketball",
		Description:     "Casual 3v3 at the main court",
		LocationName:    "Main Court",
		Latitude:        25.0173,
		Longitude:       121.5397,
		StartsAt:        starts,
		EndsAt:          ends,
		MaxParticipants: 6,
		ContactInfo:     "@hoops",
	}

	assignedID := uuid.New()
	var created *entity.Activity

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Activity")).
			Run(func(ctx context.Context, activity *entity.Activity) {
				activity.ID = assignedID
				created = activity
			}).
			Return(nil)
	})
	fx.activityRepo.EXPECT().
		FindByID(ctx, assignedID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
			return created, nil
		})

	activity, err := fx.service.Create(ctx, creatorID, input)

	require.NoError(t, err)
	assert.Equal(t, assignedID, activity.ID)
	assert.Equal(t, creatorID, activity.CreatedBy)
	assert.Equal(t, entity.ActivityStatusActive, activity.Status)
	assert.Equal(t, 121.5397, activity.Location.Lon())
	assert.Equal(t, 25.0173, activity.Location.Lat())
	assert.Equal(t, ends.Add(fx.retention), activity.ExpiresAt)
}

func TestActivityService_Create_InvertedWindow(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	starts, ends := futureWindow()
	input := &usecase.CreateActivityInput{
		Title:    "Evening Basketball",
		StartsAt: ends,
		EndsAt:   starts,
	}

	activity, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Nil(t, activity)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivityService_Create_AlreadyEnded(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	input := &usecase.CreateActivityInput{
		Title:    "Evening Basketball",
		StartsAt: time.Now().Add(-3 * time.Hour),
		EndsAt:   time.Now().Add(-time.Hour),
	}

	activity, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Nil(t, activity)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestActivityService_Get_NotFound(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activityID := uuid.New()

	fx.activityRepo.EXPECT().FindByID(ctx, activityID).Return(nil, repository.ErrActivityNotFound)

	activity, err := fx.service.Get(ctx, activityID)

	assert.Nil(t, activity)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestActivityService_Update_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	starts, ends := futureWindow()
	activity := &entity.Activity{
		ID:        uuid.New(),
		Title:     "Evening Basketball",
		StartsAt:  starts,
		EndsAt:    ends,
		CreatedBy: creatorID,
		Status:    entity.ActivityStatusActive,
	}
	participantIDs := []uuid.UUID{uuid.New(), uuid.New()}
	newTitle := "Morning Basketball"
	input := &usecase.UpdateActivityInput{Title: &newTitle}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().Update(ctx, activity).Return(nil)
		mockActivityRepo.EXPECT().ListParticipantIDs(ctx, activity.ID).Return(participantIDs, nil)
	})
	events := fx.capturePublished()
	fx.activityRepo.EXPECT().FindByID(ctx, activity.ID).Return(activity, nil)

	updated, err := fx.service.Update(ctx, creatorID, activity.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Morning Basketball", updated.Title)
	assert.Equal(t, ends.Add(fx.retention), updated.ExpiresAt)
	require.Len(t, *events, 1)
	assert.Equal(t, entity.NotificationActivityUpdate, (*events)[0].Type)
	assert.Equal(t, []string{participantIDs[0].String(), participantIDs[1].String()}, (*events)[0].RecipientIDs)
}

func TestActivityService_Update_NotCreator(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	starts, ends := futureWindow()
	activity := &entity.Activity{
		ID:        uuid.New(),
		StartsAt:  starts,
		EndsAt:    ends,
		CreatedBy: uuid.New(),
		Status:    entity.ActivityStatusActive,
	}
	newTitle := "Morning Basketball"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	updated, err := fx.service.Update(ctx, uuid.New(), activity.ID, &usecase.UpdateActivityInput{Title: &newTitle})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestActivityService_Update_Cancelled(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	starts, ends := futureWindow()
	activity := &entity.Activity{
		ID:        uuid.New(),
		StartsAt:  starts,
		EndsAt:    ends,
		CreatedBy: creatorID,
		Status:    entity.ActivityStatusCancelled,
	}
	newTitle := "Morning Basketball"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	updated, err := fx.service.Update(ctx, creatorID, activity.ID, &usecase.UpdateActivityInput{Title: &newTitle})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestActivityService_Cancel_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	starts, ends := futureWindow()
	activity := &entity.Activity{
		ID:        uuid.New(),
		Title:     "Evening Basketball",
		StartsAt:  starts,
		EndsAt:    ends,
		CreatedBy: creatorID,
		Status:    entity.ActivityStatusActive,
	}
	participantIDs := []uuid.UUID{uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().Update(ctx, activity).Return(nil)
		mockActivityRepo.EXPECT().ListParticipantIDs(ctx, activity.ID).Return(participantIDs, nil)
	})
	events := fx.capturePublished()

	err := fx.service.Cancel(ctx, creatorID, activity.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ActivityStatusCancelled, activity.Status)
	require.NotNil(t, activity.CancelledAt)
	require.Len(t, *events, 1)
	assert.Equal(t, entity.NotificationActivityCancelled, (*events)[0].Type)
	assert.Equal(t, []string{participantIDs[0].String()}, (*events)[0].RecipientIDs)
}

func TestActivityService_Cancel_Idempotent(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	cancelledAt := time.Now().Add(-time.Hour)
	activity := &entity.Activity{
		ID:          uuid.New(),
		CreatedBy:   creatorID,
		Status:      entity.ActivityStatusCancelled,
		CancelledAt: &cancelledAt,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	err := fx.service.Cancel(ctx, creatorID, activity.ID)

	require.NoError(t, err)
	assert.Equal(t, cancelledAt, *activity.CancelledAt)
}

func TestActivityService_Cancel_NotCreator(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activity := &entity.Activity{
		ID:        uuid.New(),
		CreatedBy: uuid.New(),
		Status:    entity.ActivityStatusActive,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	err := fx.service.Cancel(ctx, uuid.New(), activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestActivityService_List_Near(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	expected := []*entity.Activity{{ID: uuid.New()}}

	fx.activityRepo.EXPECT().
		ListActive(ctx, repository.ActivityFilter{
			Near:   &[2]float64{121.5397, 25.0173},
			Radius: 500,
			Limit:  20,
		}).
		Return(expected, nil)

	activities, err := fx.service.List(ctx, &usecase.ListActivitiesInput{
		Near:   true,
		Lat:    25.0173,
		Lng:    121.5397,
		Radius: 500,
		Limit:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, activities)
}

func TestActivityService_List_All(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	expected := []*entity.Activity{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.activityRepo.EXPECT().
		ListActive(ctx, repository.ActivityFilter{Limit: 50, Offset: 50}).
		Return(expected, nil)

	activities, err := fx.service.List(ctx, &usecase.ListActivitiesInput{Limit: 50, Offset: 50})

	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestActivityService_ShareQRCode_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activity := &entity.Activity{ID: uuid.New(), Status: entity.ActivityStatusActive}
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.activityRepo.EXPECT().FindByID(ctx, activity.ID).Return(activity, nil)
	fx.qrcodeService.EXPECT().GenerateActivityQR(activity.ID).Return(pngBytes, nil)

	got, err := fx.service.ShareQRCode(ctx, activity.ID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, got)
}

func TestActivityService_ShareQRCode_Cancelled(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activity := &entity.Activity{ID: uuid.New(), Status: entity.ActivityStatusCancelled}

	fx.activityRepo.EXPECT().FindByID(ctx, activity.ID).Return(activity, nil)

	got, err := fx.service.ShareQRCode(ctx, activity.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}
