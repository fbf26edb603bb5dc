package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type profileService struct {
	txManager repository.TransactionManager
	locales   *util.LocaleResolver
	logger    *slog.Logger
}

func NewProfileService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		locales:   newLocaleResolver(cfg),
		logger:    logger,
	}
}

func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findUser(ctx, repoFactory.NewUserRepository(), userID)
		user = found

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input. Balance, role and email are not editable here.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var locale string
	if input.Locale != nil {
		picked, err := pickLocale(srv.locales, *input.Locale)
		if err != nil {
			return nil, err
		}
		locale = picked
	}
	requestLogger(ctx, srv.logger).Info("Updating profile", slog.String("user_id", userID.String()))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}
		if input.Phone != nil {
			found.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.AvatarURL != nil {
			found.AvatarURL = strings.TrimSpace(*input.AvatarURL)
		}
		if locale != "" {
			found.Locale = locale
		}
		found.UpdatedAt = time.Now()

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}
