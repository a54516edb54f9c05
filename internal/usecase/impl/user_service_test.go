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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t            *testing.T
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	followRepo   *mockRepo.MockFollowRepository
	activityRepo *mockRepo.MockActivityRepository
	tokenService *mockService.MockTokenService
	googleAuth   *mockService.MockOAuthAuthService
	googleCode   *mockService.MockOAuthCodeService
	publisher    *mockService.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	followRepo := mockRepo.NewMockFollowRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	googleAuth := mockService.NewMockOAuthAuthService(t)
	googleCode := mockService.NewMockOAuthCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		FollowRepo:   followRepo,
		ActivityRepo: activityRepo,
		TokenService: tokenService,
		GoogleAuth:   googleAuth,
		GoogleCode:   googleCode,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		followRepo:   followRepo,
		activityRepo: activityRepo,
		tokenService: tokenService,
		googleAuth:   googleAuth,
		googleCode:   googleCode,
		publisher:    publisher,
	}
}

func (fx userServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func googleUser() *service.OAuthUser {
	return &service.OAuthUser{
		ID:            "google-sub-123",
		Email:         "student@example.edu",
		Name:          "Test Student",
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     "https://lh3.example.com/photo.jpg",
		EmailVerified: true,
	}
}

func TestUserService_GoogleCallback_NewUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	assignedID := uuid.New()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "credential").Return(oauthUser, nil)
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
			Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, oauthUser.Email).
			Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = assignedID
			}).
			Return(nil)
		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
			Return(nil)
	})
	fx.tokenService.EXPECT().GenerateSessionToken(assignedID).Return("session-token", nil)

	result, err := fx.service.GoogleCallback(ctx, "credential")

	require.NoError(t, err)
	assert.True(t, result.NewUser)
	assert.Equal(t, "session-token", result.Token)
	assert.Equal(t, assignedID, result.User.ID)
	assert.Equal(t, oauthUser.Email, result.User.Email)
	assert.Equal(t, oauthUser.Email, result.User.Contact)
	assert.Equal(t, oauthUser.AvatarURL, result.User.ImageURL)
	assert.True(t, result.User.Active)
}

func TestUserService_GoogleCallback_ReturningUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	existingUser := &entity.User{ID: uuid.New(), Email: oauthUser.Email, Name: oauthUser.Name}

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "credential").Return(oauthUser, nil)
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
			Return(&entity.Authentication{UserID: existingUser.ID}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, existingUser.ID).Return(existingUser, nil)
	})
	fx.tokenService.EXPECT().GenerateSessionToken(existingUser.ID).Return("session-token", nil)

	result, err := fx.service.GoogleCallback(ctx, "credential")

	require.NoError(t, err)
	assert.False(t, result.NewUser)
	assert.Equal(t, existingUser, result.User)
}

func TestUserService_GoogleCallback_LinksByEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	existingUser := &entity.User{ID: uuid.New(), Email: oauthUser.Email}

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "credential").Return(oauthUser, nil)
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
			Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(existingUser, nil)
		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, &entity.Authentication{
				UserID:         existingUser.ID,
				Provider:       entity.ProviderTypeGoogle,
				ProviderUserID: oauthUser.ID,
			}).
			Return(nil)
	})
	fx.tokenService.EXPECT().GenerateSessionToken(existingUser.ID).Return("session-token", nil)

	result, err := fx.service.GoogleCallback(ctx, "credential")

	require.NoError(t, err)
	assert.False(t, result.NewUser)
	assert.Equal(t, existingUser, result.User)
}

func TestUserService_GoogleCallback_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("token expired"))

	result, err := fx.service.GoogleCallback(ctx, "bad")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_GoogleAuthCode_NoEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := googleUser()
	oauthUser.Email = ""

	fx.googleCode.EXPECT().ExchangeCode(ctx, "auth-code").Return(oauthUser, nil)

	result, err := fx.service.GoogleAuthCode(ctx, "auth-code")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_GetUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Test Student"}
	joined := []*entity.Activity{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.followRepo.EXPECT().Counts(ctx, user.ID).Return(int64(5), int64(3), nil)
	fx.activityRepo.EXPECT().ListByParticipant(ctx, user.ID).Return(joined, nil)

	detail, err := fx.service.GetUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, detail.User)
	assert.Equal(t, int64(5), detail.FollowerCount)
	assert.Equal(t, int64(3), detail.FollowingCount)
	assert.Equal(t, []uuid.UUID{joined[0].ID, joined[1].ID}, detail.JoinedActivityIDs)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	detail, err := fx.service.GetUser(ctx, userID)

	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Name: "Old Name", Bio: "old bio"}
	newName := "New Name"
	newInstagram := "new.handle"
	input := &usecase.UpdateProfileInput{Name: &newName, Instagram: &newInstagram}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		mockUserRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "new.handle", user.Instagram)
	assert.Equal(t, "old bio", user.Bio)
}

func TestUserService_Follow_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	follower := &entity.User{ID: uuid.New(), Name: "Test Student"}
	followee := &entity.User{ID: uuid.New(), Name: "Another Student"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, followee.ID).Return(followee, nil)
		mockUserRepo.EXPECT().FindByID(ctx, follower.ID).Return(follower, nil)
		mockFollowRepo.EXPECT().
			Create(ctx, &entity.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}).
			Return(nil)
	})

	var published *service.ActivityEvent
	fx.publisher.EXPECT().
		PublishActivityEvent(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(ctx context.Context, event *service.ActivityEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.Follow(ctx, follower.ID, followee.ID)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, entity.NotificationNewFollower, published.Type)
	assert.Equal(t, "Test Student started following you", published.Message)
	assert.Equal(t, []string{followee.ID.String()}, published.RecipientIDs)
}

func TestUserService_Follow_Self(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	err := fx.service.Follow(ctx, userID, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Follow_AlreadyFollowing(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	follower := &entity.User{ID: uuid.New()}
	followee := &entity.User{ID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)

		mockUserRepo.EXPECT().FindByID(ctx, followee.ID).Return(followee, nil)
		mockUserRepo.EXPECT().FindByID(ctx, follower.ID).Return(follower, nil)
		mockFollowRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Follow")).
			Return(repository.ErrDuplicateFollow)
	})

	err := fx.service.Follow(ctx, follower.ID, followee.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyFollowing))
}

func TestUserService_Follow_FolloweeNotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	followerID := uuid.New()
	followeeID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, followeeID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.Follow(ctx, followerID, followeeID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Unfollow_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	followerID := uuid.New()
	followeeID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)
		mockFollowRepo.EXPECT().Delete(ctx, followerID, followeeID).Return(true, nil)
	})

	err := fx.service.Unfollow(ctx, followerID, followeeID)

	require.NoError(t, err)
}

func TestUserService_Unfollow_NotFollowing(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	followerID := uuid.New()
	followeeID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockFollowRepo := mockRepo.NewMockFollowRepository(t)
		factory.EXPECT().FollowRepo().Return(mockFollowRepo)
		mockFollowRepo.EXPECT().Delete(ctx, followerID, followeeID).Return(false, nil)
	})

	err := fx.service.Unfollow(ctx, followerID, followeeID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFollowing))
}

func TestUserService_ListFollowers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.followRepo.EXPECT().ListFollowers(ctx, userID).Return(expected, nil)

	users, err := fx.service.ListFollowers(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
