package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			TxManager: txManager,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
	}
}

func TestCatalogService_ListCategories_CappedAtTwelve(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	categories := make([]*entity.Category, 12)
	for i := range categories {
		categories[i] = &entity.Category{ID: uuid.New(), IsActive: true, SortOrder: i}
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockCategoryRepository(t)
		factory.EXPECT().NewCategoryRepository().Return(repo)
		repo.EXPECT().ListActive(ctx, 12).Return(categories, nil)
	})

	got, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 12)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query skips the database", func(t *testing.T) {
		fx := createTestCatalogService(t)

		got, err := fx.service.SearchProducts(ctx, &usecase.ProductSearchQuery{Query: "   "})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		fx := createTestCatalogService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewProductRepository().Return(repo)
			repo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
				return f.Query == "zzzznotfound" && f.Status != nil && *f.Status == entity.ProductStatusPublished && f.Limit == defaultSearchLimit
			})).Return(nil, int64(0), nil)
		})

		got, err := fx.service.SearchProducts(ctx, &usecase.ProductSearchQuery{Query: "zzzznotfound"})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown category yields empty page", func(t *testing.T) {
		fx := createTestCatalogService(t)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			repo := mockRepo.NewMockCategoryRepository(t)
			factory.EXPECT().NewCategoryRepository().Return(repo)
			repo.EXPECT().FindBySlug(ctx, "hats").Return(nil, repository.ErrCategoryNotFound)
		})

		page, err := fx.service.ListProducts(ctx, &usecase.ProductListQuery{Category: "hats"})

		require.NoError(t, err)
		assert.Empty(t, page.Products)
		assert.Equal(t, int64(0), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 24, page.Limit)
	})

	t.Run("page size is clamped", func(t *testing.T) {
		fx := createTestCatalogService(t)
		categoryID := uuid.New()
		product := &entity.Product{ID: uuid.New(), Status: entity.ProductStatusPublished}
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			categoryRepo := mockRepo.NewMockCategoryRepository(t)
			productRepo := mockRepo.NewMockProductRepository(t)
			factory.EXPECT().NewCategoryRepository().Return(categoryRepo)
			factory.EXPECT().NewProductRepository().Return(productRepo)

			categoryRepo.EXPECT().FindBySlug(ctx, "dresses").Return(&entity.Category{ID: categoryID}, nil)
			productRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
				return f.CategoryID != nil && *f.CategoryID == categoryID && f.Limit == 100 && f.Offset == 100
			})).Return([]*entity.Product{product}, int64(101), nil)
		})

		page, err := fx.service.ListProducts(ctx, &usecase.ProductListQuery{
			PageQuery: usecase.PageQuery{Page: 2, Limit: 500},
			Category:  "dresses",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(101), page.Total)
		assert.Equal(t, 100, page.Limit)
		assert.Len(t, page.Products, 1)
	})
}

func TestCatalogService_GetProduct_DraftIsHidden(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(repo)
		repo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID, Status: entity.ProductStatusDraft}, nil)
	})

	_, err := fx.service.GetProduct(ctx, productID)

	requireErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func TestCatalogService_GetShop_SuspendedIsHidden(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockShopRepository(t)
		factory.EXPECT().NewShopRepository().Return(repo)
		repo.EXPECT().FindBySlug(ctx, "atelier").Return(&entity.Shop{ID: uuid.New(), Status: entity.ShopStatusSuspended}, nil)
	})

	_, err := fx.service.GetShop(ctx, "atelier")

	requireErrorCode(t, err, "SHOP_NOT_FOUND")
}
