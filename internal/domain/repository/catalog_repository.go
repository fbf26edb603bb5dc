package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategorySlugTaken = errors.New("category slug taken")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductSlugTaken  = errors.New("product slug taken")
	// ErrInsufficientStock is returned when a conditional stock decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CategoryRepository persists storefront categories.
type CategoryRepository interface {
	// ListActive returns active categories ordered by sortOrder ascending, capped at limit.
	ListActive(ctx context.Context, limit int) ([]*entity.Category, error)
	ListAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductFilter narrows product listings. Zero values mean "any".
type ProductFilter struct {
	CategoryID *uuid.UUID
	ShopID     *uuid.UUID
	Status     *entity.ProductStatus
	// Query matches name, description or shortDesc case-insensitively.
	Query  string
	Offset int
	Limit  int
}

// ProductRepository persists products and their images.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// Create persists the product together with its images.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies product columns and replaces the image set.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock removes qty only when enough stock remains.
	// Returns ErrInsufficientStock when it does not.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	IncrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

// FavoriteRepository persists wish-list entries.
type FavoriteRepository interface {
	// Add is idempotent.
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
