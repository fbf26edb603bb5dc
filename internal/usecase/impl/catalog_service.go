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

const defaultSearchLimit = 20

// catalogService implements the public CatalogUsecase. Buyers only ever see
// PUBLISHED products and ACTIVE shops.
type catalogService struct {
	txManager     repository.TransactionManager
	categoryLimit int
	pageSize      int
	maxPageSize   int
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for the catalog services, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return newCatalogService(params)
}

func newCatalogService(params CatalogServiceParams) *catalogService {
	srv := &catalogService{
		txManager:     params.TxManager,
		categoryLimit: 12,
		pageSize:      24,
		maxPageSize:   100,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Catalog != nil {
		catalog := params.Config.Catalog
		if catalog.CategoryLimit > 0 {
			srv.categoryLimit = catalog.CategoryLimit
		}
		if catalog.DefaultPageSize > 0 {
			srv.pageSize = catalog.DefaultPageSize
		}
		if catalog.MaxPageSize > 0 {
			srv.maxPageSize = catalog.MaxPageSize
		}
	}

	return srv
}

// ListCategories returns active categories in sort order, capped at the sidebar limit.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories := []*entity.Category{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCategoryRepository().ListActive(ctx, srv.categoryLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		if found != nil {
			categories = found
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// ListProducts returns one page of published products. Unknown category or shop slugs yield an empty page.
func (srv *catalogService) ListProducts(ctx context.Context, query *usecase.ProductListQuery) (*usecase.ProductPage, error) {
	published := entity.ProductStatusPublished

	return srv.listProducts(ctx, query, &published, true)
}

func (srv *catalogService) listProducts(
	ctx context.Context,
	query *usecase.ProductListQuery,
	status *entity.ProductStatus,
	activeShopsOnly bool,
) (*usecase.ProductPage, error) {
	page, offset, limit := query.Normalize(srv.pageSize, srv.maxPageSize)
	result := &usecase.ProductPage{Products: []*entity.Product{}, Page: page, Limit: limit}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		filter := repository.ProductFilter{
			Status: status,
			Query:  strings.TrimSpace(query.Query),
			Offset: offset,
			Limit:  limit,
		}

		if query.Category != "" {
			category, err := repoFactory.NewCategoryRepository().FindBySlug(ctx, query.Category)
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "failed to find category")
			}
			filter.CategoryID = &category.ID
		}

		if query.Shop != "" {
			shop, err := repoFactory.NewShopRepository().FindBySlug(ctx, query.Shop)
			if errors.Is(err, repository.ErrShopNotFound) {
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "failed to find shop")
			}
			if activeShopsOnly && !shop.IsActive() {
				return nil
			}
			filter.ShopID = &shop.ID
		}

		products, total, err := repoFactory.NewProductRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		if products != nil {
			result.Products = products
		}
		result.Total = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SearchProducts matches published products by name, description and short description.
func (srv *catalogService) SearchProducts(ctx context.Context, query *usecase.ProductSearchQuery) ([]*entity.Product, error) {
	text := strings.TrimSpace(query.Query)
	if text == "" {
		return []*entity.Product{}, nil
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > srv.maxPageSize {
		limit = srv.maxPageSize
	}

	published := entity.ProductStatusPublished
	products := []*entity.Product{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, _, err := repoFactory.NewProductRepository().List(ctx, repository.ProductFilter{
			Status: &published,
			Query:  text,
			Limit:  limit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to search products")
		}
		if found != nil {
			products = found
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, srv.logger).Debug("Product search", slog.String("q", text), slog.Int("hits", len(products)))

	return products, nil
}

// GetProduct returns a published product.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProduct(ctx, repoFactory.NewProductRepository(), productID)
		if err != nil {
			return err
		}
		if !found.IsPublished() {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not published")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetShop returns an active shop and its published products.
func (srv *catalogService) GetShop(ctx context.Context, slug string) (*usecase.ShopView, error) {
	view := &usecase.ShopView{Products: []*entity.Product{}}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := repoFactory.NewShopRepository().FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
			}

			return errors.Wrap(err, "failed to find shop")
		}
		if !shop.IsActive() {
			return errors.Wrap(domainerrors.ErrShopNotFound, "shop is not active")
		}
		view.Shop = shop

		published := entity.ProductStatusPublished
		products, _, err := repoFactory.NewProductRepository().List(ctx, repository.ProductFilter{
			ShopID: &shop.ID,
			Status: &published,
			Limit:  srv.maxPageSize,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list shop products")
		}
		if products != nil {
			view.Products = products
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
