package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// List applies the filter and returns newest products first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR short_desc ILIKE ?", pattern, pattern, pattern)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}
	if total == 0 {
		return []*entity.Product{}, 0, nil
	}

	var productModels []*model.ProductModel
	if err := paginate(query, filter.Offset, filter.Limit).
		Preload("Images", preloadImages).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Where("id IN ?", ids).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(productModels), nil
}

// Create inserts the product and its images in one statement batch.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProductSlugTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	product.Images = toProductImageDomains(productM.Images)

	return nil
}

// Update writes product columns and swaps the image set. Callers run it inside a transaction.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("category_id", "shop_id", "name", "slug", "description", "short_desc",
			"price", "compare_at_price", "stock", "status", "updated_at").
		Updates(productM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrProductSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	if err := db.Where("product_id = ?", product.ID).Delete(&model.ProductImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear product images")
	}
	if len(productM.Images) > 0 {
		if err := db.Create(&productM.Images).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to save product images")
		}
	}
	product.Images = toProductImageDomains(productM.Images)

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("product is referenced by orders")
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock reserves qty units with a conditional update.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", qty))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	var compareAt *decimal.Decimal
	if data.CompareAtPrice.Valid {
		v := data.CompareAtPrice.Decimal
		compareAt = &v
	}

	return &entity.Product{
		ID:             data.ID,
		CategoryID:     data.CategoryID,
		ShopID:         data.ShopID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		ShortDesc:      data.ShortDesc,
		Price:          data.Price,
		CompareAtPrice: compareAt,
		Stock:          data.Stock,
		Status:         entity.ProductStatus(data.Status),
		Images:         toProductImageDomains(data.Images),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductImageDomains(models []model.ProductImageModel) []entity.ProductImage {
	images := make([]entity.ProductImage, 0, len(models))
	for _, m := range models {
		images = append(images, entity.ProductImage{
			ID:        m.ID,
			ProductID: m.ProductID,
			URL:       m.URL,
			SortOrder: m.SortOrder,
			IsPrimary: m.IsPrimary,
		})
	}

	return images
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	var compareAt decimal.NullDecimal
	if data.CompareAtPrice != nil {
		compareAt = decimal.NewNullDecimal(*data.CompareAtPrice)
	}

	images := make([]model.ProductImageModel, 0, len(data.Images))
	for i, img := range data.Images {
		id := img.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		images = append(images, model.ProductImageModel{
			ID:        id,
			ProductID: data.ID,
			URL:       img.URL,
			SortOrder: i,
			IsPrimary: img.IsPrimary,
		})
	}

	return &model.ProductModel{
		ID:             data.ID,
		CategoryID:     data.CategoryID,
		ShopID:         data.ShopID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		ShortDesc:      data.ShortDesc,
		Price:          data.Price,
		CompareAtPrice: compareAt,
		Stock:          data.Stock,
		Status:         string(data.Status),
		Images:         images,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
