package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase serves the public storefront listings.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListProducts(ctx context.Context, query *ProductListQuery) (*ProductPage, error)
	SearchProducts(ctx context.Context, query *ProductSearchQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	GetShop(ctx context.Context, slug string) (*ShopView, error)
}

// CatalogAdminUsecase is the staff view of categories and products.
type CatalogAdminUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	ListProducts(ctx context.Context, query *ProductListQuery) (*ProductPage, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// ProductListQuery filters a product listing. Category and Shop are slugs.
type ProductListQuery struct {
	PageQuery
	Category string `query:"category" validate:"omitempty,max=120"`
	Shop     string `query:"shop" validate:"omitempty,max=120"`
	Status   string `query:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Query    string `query:"q" validate:"omitempty,max=120"`
}

// ProductSearchQuery is a free-text product search.
type ProductSearchQuery struct {
	Query string `query:"q" validate:"max=120"`
	Limit int    `query:"limit" validate:"omitempty,min=1"`
}

// ProductPage is one page of products.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// ShopView is a shop's public page.
type ShopView struct {
	Shop     *entity.Shop      `json:"shop"`
	Products []*entity.Product `json:"products"`
}

// CategoryInput defines a category create or full update.
type CategoryInput struct {
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Name        string     `json:"name" validate:"required,max=120"`
	Slug        string     `json:"slug" validate:"omitempty,max=120"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string     `json:"imageUrl" validate:"omitempty,max=512"`
	IsActive    *bool      `json:"isActive,omitempty"`
	SortOrder   int        `json:"sortOrder"`
}

// ProductImageInput is one image of a product, in display order.
type ProductImageInput struct {
	URL       string `json:"url" validate:"required,max=512"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductInput defines a product create or full update.
type ProductInput struct {
	CategoryID     uuid.UUID           `json:"categoryId" validate:"required"`
	Name           string              `json:"name" validate:"required,max=200"`
	Slug           string              `json:"slug" validate:"omitempty,max=200"`
	Description    string              `json:"description" validate:"omitempty,max=10000"`
	ShortDesc      string              `json:"shortDesc" validate:"omitempty,max=500"`
	Price          decimal.Decimal     `json:"price"`
	CompareAtPrice *decimal.Decimal    `json:"compareAtPrice,omitempty"`
	Stock          int                 `json:"stock" validate:"min=0"`
	Status         string              `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Images         []ProductImageInput `json:"images" validate:"omitempty,max=20,dive"`
}

// FavoriteUsecase manages a user's wish list.
type FavoriteUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

// FavoriteInput names the product to add to the wish list.
type FavoriteInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}
