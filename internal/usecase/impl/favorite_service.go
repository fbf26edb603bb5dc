package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(txManager repository.TransactionManager, logger *slog.Logger) usecase.FavoriteUsecase {
	return &favoriteService{txManager: txManager, logger: logger}
}

// List returns the caller's favorites with their products.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites := []*entity.Favorite{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewFavoriteRepository().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list favorites")
		}
		if found != nil {
			favorites = found
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return favorites, nil
}

// Add favorites an existing product. Adding twice is a no-op.
func (srv *favoriteService) Add(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProduct(ctx, repoFactory.NewProductRepository(), productID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.NewFavoriteRepository().Add(ctx, userID, productID), "failed to add favorite")
	})
}

// Remove drops a favorite. Removing a missing favorite is a no-op.
func (srv *favoriteService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewFavoriteRepository().Remove(ctx, userID, productID), "failed to remove favorite")
	})
}
