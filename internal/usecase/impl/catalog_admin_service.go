package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogAdminService implements CatalogAdminUsecase for staff.
type catalogAdminService struct {
	*catalogService
}

// NewCatalogAdminService is the constructor for catalogAdminService.
func NewCatalogAdminService(params CatalogServiceParams) usecase.CatalogAdminUsecase {
	return &catalogAdminService{catalogService: newCatalogService(params)}
}

func mapCategoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
	case errors.Is(err, repository.ErrCategorySlugTaken):
		return errors.Wrap(domainerrors.ErrCategorySlugTaken, "category slug taken")
	default:
		return errors.Wrap(err, "category write failed")
	}
}

func applyCategoryInput(category *entity.Category, input *usecase.CategoryInput) error {
	slug := util.Slugify(input.Slug)
	if slug == "" {
		slug = util.Slugify(input.Name)
	}
	if slug == "" {
		return domainerrors.ErrValidationFailed.WithDetails("slug could not be derived from name")
	}

	category.ParentID = input.ParentID
	category.Name = strings.TrimSpace(input.Name)
	category.Slug = slug
	category.Description = input.Description
	category.ImageURL = input.ImageURL
	category.SortOrder = input.SortOrder
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	category.UpdatedAt = time.Now()

	return nil
}

// ListCategories returns every category, active or not.
func (srv *catalogAdminService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCategoryRepository().ListAll(ctx)
		categories = found

		return errors.Wrap(err, "failed to list categories")
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// CreateCategory adds a category. New categories are active unless told otherwise.
func (srv *catalogAdminService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{ID: uuid.New(), IsActive: true, CreatedAt: time.Now()}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}
	if category.ParentID != nil && *category.ParentID == category.ID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category cannot be its own parent")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapCategoryError(repoFactory.NewCategoryRepository().Create(ctx, category))
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Category created", slog.Any("categoryID", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

// UpdateCategory replaces a category's fields.
func (srv *catalogAdminService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if input.ParentID != nil && *input.ParentID == categoryID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category cannot be its own parent")
	}

	var category *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		found, err := categoryRepo.FindByID(ctx, categoryID)
		if err != nil {
			return mapCategoryError(err)
		}
		if err := applyCategoryInput(found, input); err != nil {
			return err
		}
		if err := categoryRepo.Update(ctx, found); err != nil {
			return mapCategoryError(err)
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category that no product references.
func (srv *catalogAdminService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapCategoryError(repoFactory.NewCategoryRepository().Delete(ctx, categoryID))
	})
}

// ListProducts lists products in any status, optionally filtered.
func (srv *catalogAdminService) ListProducts(ctx context.Context, query *usecase.ProductListQuery) (*usecase.ProductPage, error) {
	var status *entity.ProductStatus
	if query.Status != "" {
		s := entity.ProductStatus(query.Status)
		if !s.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product status " + query.Status)
		}
		status = &s
	}

	return srv.listProducts(ctx, query, status, false)
}

// CreateProduct adds a platform-owned product.
func (srv *catalogAdminService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := newProduct(input, nil)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapProductWriteError(repoFactory.NewProductRepository().Create(ctx, product))
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Info("Product created", slog.Any("productID", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct replaces a product's fields and images.
func (srv *catalogAdminService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		found, err := findProduct(ctx, productRepo, productID)
		if err != nil {
			return err
		}
		applyProductInput(found, input, time.Now())
		if err := productRepo.Update(ctx, found); err != nil {
			return mapProductWriteError(err)
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product that no order references.
func (srv *catalogAdminService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapProductWriteError(repoFactory.NewProductRepository().Delete(ctx, productID))
	})
}
