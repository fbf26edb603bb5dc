package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "id = ?", id)
}

func (repo *shopRepository) FindBySlug(ctx context.Context, slug string) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx), "slug = ?", slug)
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "owner_id = ?", ownerID)
}

func (repo *shopRepository) findOne(db *gorm.DB, cond string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := db.Where(cond, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// Update writes the seller-editable columns and status.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Select("name", "description", "logo_url", "status", "updated_at").
		Updates(fromShopDomain(shop))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func (repo *shopRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shop slug")
	}

	return count > 0, nil
}

func (repo *shopRepository) CreditBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit shop balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func (repo *shopRepository) DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ? AND balance >= ?", id, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit shop balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientBalance
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Status:      entity.ShopStatus(data.Status),
		Balance:     data.Balance,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Status:      string(data.Status),
		Balance:     data.Balance,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
