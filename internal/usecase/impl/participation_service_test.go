package impl

import (
	"context"
	"testing"

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

// participationServiceFixtures holds all test dependencies for participation service tests.
type participationServiceFixtures struct {
	t         *testing.T
	service   usecase.ParticipationUsecase
	txManager *mockRepo.MockTransactionManager
	publisher *mockService.MockEventPublisher
}

func createTestParticipationService(t *testing.T) participationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewParticipationService(ParticipationServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return participationServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		publisher: publisher,
	}
}

// onExecute sets up the transaction mock to run the unit against a repository
// factory configured by setup, propagating the unit's own error.
func (fx participationServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func (fx participationServiceFixtures) capturePublished() *[]*service.ActivityEvent {
	var events []*service.ActivityEvent
	fx.publisher.EXPECT().
		PublishActivityEvent(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(ctx context.Context, event *service.ActivityEvent) {
			events = append(events, event)
		}).
		Return(nil)

	return &events
}

func activeActivity(creatorID uuid.UUID, maxParticipants int) *entity.Activity {
	return &entity.Activity{
		ID:              uuid.New(),
		Title:           "Evening Basketball",
		MaxParticipants: maxParticipants,
		CreatedBy:       creatorID,
		Status:          entity.ActivityStatusActive,
	}
}

func TestParticipationService_Join_Success(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	userID := uuid.New()
	activity := activeActivity(creatorID, 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(false, nil)
		mockActivityRepo.EXPECT().CountParticipants(ctx, activity.ID).Return(3, nil)
		mockActivityRepo.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(nil)
	})
	events := fx.capturePublished()

	err := fx.service.Join(ctx, userID, activity.ID)

	require.NoError(t, err)
	require.Len(t, *events, 1)
	assert.Equal(t, entity.NotificationNewParticipant, (*events)[0].Type)
	assert.Equal(t, []string{creatorID.String()}, (*events)[0].RecipientIDs)
	assert.Equal(t, userID.String(), (*events)[0].ActorID)
}

func TestParticipationService_Join_LastSeat(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 3)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(false, nil)
		mockActivityRepo.EXPECT().CountParticipants(ctx, activity.ID).Return(2, nil)
		mockActivityRepo.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(nil)
	})
	fx.capturePublished()

	err := fx.service.Join(ctx, userID, activity.ID)

	require.NoError(t, err)
}

func TestParticipationService_Join_Full(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 3)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(false, nil)
		mockActivityRepo.EXPECT().CountParticipants(ctx, activity.ID).Return(3, nil)
	})

	err := fx.service.Join(ctx, userID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrActivityFull))
}

func TestParticipationService_Join_Unlimited(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 0)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(false, nil)
		mockActivityRepo.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(nil)
	})
	fx.capturePublished()

	err := fx.service.Join(ctx, userID, activity.ID)

	require.NoError(t, err)
}

func TestParticipationService_Join_AlreadyJoined(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(true, nil)
	})

	err := fx.service.Join(ctx, userID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyJoined))
}

func TestParticipationService_Join_DuplicateRace(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(false, nil)
		mockActivityRepo.EXPECT().CountParticipants(ctx, activity.ID).Return(1, nil)
		mockActivityRepo.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(repository.ErrDuplicateParticipant)
	})

	err := fx.service.Join(ctx, userID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyJoined))
}

func TestParticipationService_Join_UserNotFound(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 10)

	// A session token can outlive its user row; the membership insert is
	// where the missing user surfaces.
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().IsParticipant(ctx, activity.ID, userID).Return(false, nil)
		mockActivityRepo.EXPECT().CountParticipants(ctx, activity.ID).Return(1, nil)
		mockActivityRepo.EXPECT().AddParticipant(ctx, activity.ID, userID).Return(repository.ErrUserNotFound)
	})

	err := fx.service.Join(ctx, userID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestParticipationService_Join_Owner(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	activity := activeActivity(creatorID, 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	err := fx.service.Join(ctx, creatorID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrOwnerCannotJoin))
}

func TestParticipationService_Join_Cancelled(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 10)
	activity.Status = entity.ActivityStatusCancelled

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	err := fx.service.Join(ctx, userID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestParticipationService_Join_NotFound(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activityID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activityID).Return(nil, repository.ErrActivityNotFound)
	})

	err := fx.service.Join(ctx, userID, activityID)

	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestParticipationService_Leave_Success(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().RemoveParticipant(ctx, activity.ID, userID).Return(true, nil)
	})

	err := fx.service.Leave(ctx, userID, activity.ID)

	require.NoError(t, err)
}

func TestParticipationService_Leave_NotJoined(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	userID := uuid.New()
	activity := activeActivity(uuid.New(), 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().RemoveParticipant(ctx, activity.ID, userID).Return(false, nil)
	})

	err := fx.service.Leave(ctx, userID, activity.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotJoined))
}

func TestParticipationService_RemoveParticipant_Success(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	targetID := uuid.New()
	activity := activeActivity(creatorID, 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().RemoveParticipant(ctx, activity.ID, targetID).Return(true, nil)
	})
	events := fx.capturePublished()

	err := fx.service.RemoveParticipant(ctx, creatorID, activity.ID, targetID)

	require.NoError(t, err)
	require.Len(t, *events, 1)
	assert.Equal(t, entity.NotificationActivityUpdate, (*events)[0].Type)
	assert.Equal(t, []string{targetID.String()}, (*events)[0].RecipientIDs)
}

func TestParticipationService_RemoveParticipant_NotCreator(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	requesterID := uuid.New()
	targetID := uuid.New()
	activity := activeActivity(uuid.New(), 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
	})

	err := fx.service.RemoveParticipant(ctx, requesterID, activity.ID, targetID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestParticipationService_RemoveParticipant_NotJoined(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	targetID := uuid.New()
	activity := activeActivity(creatorID, 10)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		mockActivityRepo.EXPECT().FindByIDForUpdate(ctx, activity.ID).Return(activity, nil)
		mockActivityRepo.EXPECT().RemoveParticipant(ctx, activity.ID, targetID).Return(false, nil)
	})

	err := fx.service.RemoveParticipant(ctx, creatorID, activity.ID, targetID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotJoined))
}
