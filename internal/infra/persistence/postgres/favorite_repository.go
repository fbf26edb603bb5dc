package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add ignores duplicates so repeated clicks stay idempotent.
func (repo *favoriteRepository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.FavoriteModel{UserID: userID, ProductID: productID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

func (repo *favoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", preloadImages).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, m := range favoriteModels {
		favorites = append(favorites, &entity.Favorite{
			UserID:    m.UserID,
			ProductID: m.ProductID,
			Product:   toProductDomain(m.Product),
			CreatedAt: m.CreatedAt,
		})
	}

	return favorites, nil
}
