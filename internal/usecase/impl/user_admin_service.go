package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	txManager   repository.TransactionManager
	pageSize    int
	maxPageSize int
	logger      *slog.Logger
}

// UserAdminServiceParams holds dependencies for UserAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	srv := &userAdminService{
		txManager:   params.TxManager,
		pageSize:    24,
		maxPageSize: 100,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.DefaultPageSize > 0 {
			srv.pageSize = params.Config.Catalog.DefaultPageSize
		}
		if params.Config.Catalog.MaxPageSize > 0 {
			srv.maxPageSize = params.Config.Catalog.MaxPageSize
		}
	}

	return srv
}

// List searches users by name or email.
func (srv *userAdminService) List(ctx context.Context, query *usecase.UserListQuery) (*usecase.UserPage, error) {
	filter := repository.UserFilter{Query: strings.TrimSpace(query.Query)}
	if query.Role != "" {
		role := entity.Role(query.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + query.Role)
		}
		filter.Role = &role
	}
	page, offset, limit := query.Normalize(srv.pageSize, srv.maxPageSize)
	filter.Offset = offset
	filter.Limit = limit

	result := &usecase.UserPage{Users: []*entity.User{}, Page: page, Limit: limit}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, total, err := repoFactory.NewUserRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		if users != nil {
			result.Users = users
		}
		result.Total = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateAccess changes a user's role and selling permission. Admins cannot change their own role.
func (srv *userAdminService) UpdateAccess(ctx context.Context, actorID, userID uuid.UUID, input *usecase.UpdateAccessInput) (*entity.User, error) {
	var role *entity.Role
	if input.Role != nil {
		r := entity.Role(*input.Role)
		if !r.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + *input.Role)
		}
		if actorID == userID && r != entity.RoleAdmin {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "admins cannot demote themselves")
		}
		role = &r
	}
	if role == nil && input.CanSell == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.UpdateAccess(ctx, userID, role, input.CanSell); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update access")
		}

		found, err := findUser(ctx, userRepo, userID)
		user = found

		return err
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("User access updated",
		slog.Any("userID", userID), slog.Any("actorID", actorID), slog.String("role", string(user.Role)), slog.Bool("canSell", user.CanSell))

	return user, nil
}

// AdjustBalance credits a positive amount or debits a negative one. Debits never take a balance below zero.
func (srv *userAdminService) AdjustBalance(ctx context.Context, actorID, userID uuid.UUID, input *usecase.BalanceAdjustmentInput) (*entity.User, error) {
	if input.Amount.IsZero() {
		return nil, domainerrors.ErrInvalidAmount.WithDetails("amount must not be zero")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		var err error
		if input.Amount.IsPositive() {
			err = userRepo.CreditBalance(ctx, userID, input.Amount)
		} else {
			err = userRepo.DebitBalance(ctx, userID, input.Amount.Neg())
		}
		if err != nil {
			return mapBalanceError(err)
		}

		found, err := findUser(ctx, userRepo, userID)
		user = found

		return err
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Balance adjusted",
		slog.Any("userID", userID), slog.Any("actorID", actorID), slog.String("amount", input.Amount.String()), slog.String("reason", input.Reason))

	message := "Your balance was adjusted by " + input.Amount.StringFixed(2) + "."
	if input.Reason != "" {
		message += " Reason: " + input.Reason
	}
	notifyBestEffort(ctx, srv.txManager, srv.logger, &entity.Notification{
		UserID:  userID,
		Title:   "Balance updated",
		Message: message,
		Type:    entity.NotificationTypeWallet,
		Link:    "/wallet",
	})

	return user, nil
}
