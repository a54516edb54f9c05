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

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	followRepo   repository.FollowRepository
	activityRepo repository.ActivityRepository
	tokenService service.TokenService
	googleAuth   service.OAuthAuthService
	googleCode   service.OAuthCodeService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FollowRepo   repository.FollowRepository
	ActivityRepo repository.ActivityRepository
	TokenService service.TokenService
	GoogleAuth   service.OAuthAuthService
	GoogleCode   service.OAuthCodeService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		followRepo:   params.FollowRepo,
		activityRepo: params.ActivityRepo,
		tokenService: params.TokenService,
		googleAuth:   params.GoogleAuth,
		googleCode:   params.GoogleCode,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GoogleCallback signs a user in from a verified Google ID token credential.
func (srv *userService) GoogleCallback(ctx context.Context, credential string) (*usecase.LoginResult, error) {
	oauthUser, err := srv.googleAuth.VerifyIDToken(ctx, credential)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	return srv.completeLogin(ctx, oauthUser)
}

// GoogleAuthCode signs a user in from an OAuth authorization code.
func (srv *userService) GoogleAuthCode(ctx context.Context, code string) (*usecase.LoginResult, error) {
	oauthUser, err := srv.googleCode.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	return srv.completeLogin(ctx, oauthUser)
}

// completeLogin finds or creates the user for a verified Google identity and
// issues a session token. The lookup order is provider link first, then
// email, so a returning user keeps their account even if Google rotates
// nothing but our own records changed.
func (srv *userService) completeLogin(ctx context.Context, oauthUser *service.OAuthUser) (*usecase.LoginResult, error) {
	if oauthUser.Email == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("identity has no email")
	}

	srv.log(ctx).Info("Completing Google sign-in", slog.String("email", oauthUser.Email))

	var (
		user    *entity.User
		newUser bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
		if err == nil {
			user, err = userRepo.FindByID(ctx, authRecord.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load linked user")
			}

			return nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// No provider link yet. Attach to an existing account with the same
		// email, or create a fresh one.
		user, err = userRepo.FindByEmail(ctx, oauthUser.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &entity.User{
				Email:    oauthUser.Email,
				Name:     oauthUser.Name,
				Contact:  oauthUser.Email, // contact defaults to the login email
				ImageURL: oauthUser.AvatarURL,
				Active:   true,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			newUser = true
		} else if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		auth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       oauthUser.Provider,
			ProviderUserID: oauthUser.ID,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to link authentication")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.LoginResult{User: user, Token: token, NewUser: newUser}, nil
}

// GetUser returns the public view of a user.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*usecase.UserDetail, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	followers, following, err := srv.followRepo.Counts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count follows")
	}

	joined, err := srv.activityRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list joined activities")
	}

	joinedIDs := make([]uuid.UUID, 0, len(joined))
	for _, activity := range joined {
		joinedIDs = append(joinedIDs, activity.ID)
	}

	return &usecase.UserDetail{
		User:              user,
		FollowerCount:     followers,
		FollowingCount:    following,
		JoinedActivityIDs: joinedIDs,
	}, nil
}

// UpdateProfile updates the caller's own profile fields.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.String("user_id", userID.String()))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Contact != nil {
			found.Contact = *input.Contact
		}
		if input.Bio != nil {
			found.Bio = *input.Bio
		}
		if input.Instagram != nil {
			found.Instagram = *input.Instagram
		}
		if input.ImageURL != nil {
			found.ImageURL = *input.ImageURL
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Follow makes follower follow followee and tells the followee about it.
func (srv *userService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return domainerrors.ErrValidationFailed.WrapMessage("cannot follow yourself")
	}

	srv.log(ctx).Info("Following user",
		slog.String("follower_id", followerID.String()),
		slog.String("followee_id", followeeID.String()),
	)

	var follower *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		followRepo := repoFactory.FollowRepo()

		if _, err := userRepo.FindByID(ctx, followeeID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find followee")
		}

		found, err := userRepo.FindByID(ctx, followerID)
		if err != nil {
			return errors.Wrap(err, "failed to find follower")
		}
		follower = found

		follow := &entity.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := followRepo.Create(ctx, follow); err != nil {
			if errors.Is(err, repository.ErrDuplicateFollow) {
				return domainerrors.ErrAlreadyFollowing
			}

			return errors.Wrap(err, "failed to create follow")
		}

		return nil
	})
	if err != nil {
		return err
	}

	publishActivityEvent(ctx, srv.log(ctx), srv.publisher, &service.ActivityEvent{
		Type:         entity.NotificationNewFollower,
		ActorID:      followerID.String(),
		Message:      follower.Name + " started following you",
		RecipientIDs: []string{followeeID.String()},
	})

	return nil
}

// Unfollow removes the follow edge.
func (srv *userService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	srv.log(ctx).Info("Unfollowing user",
		slog.String("follower_id", followerID.String()),
		slog.String("followee_id", followeeID.String()),
	)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.FollowRepo().Delete(ctx, followerID, followeeID)
		if err != nil {
			return errors.Wrap(err, "failed to delete follow")
		}
		if !removed {
			return domainerrors.ErrNotFollowing
		}

		return nil
	})
}

// ListFollowers returns the users following userID.
func (srv *userService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	users, err := srv.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return users, nil
}

// ListFollowing returns the users userID follows.
func (srv *userService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	users, err := srv.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return users, nil
}
