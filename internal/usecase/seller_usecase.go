package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerUsecase is the seller dashboard. Every call is scoped to the caller's own active shop.
type SellerUsecase interface {
	GetShop(ctx context.Context, userID uuid.UUID) (*entity.Shop, error)
	UpdateShop(ctx context.Context, userID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)

	ListProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, userID uuid.UUID, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error

	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, input *OrderStatusInput) (*entity.Order, error)
}

// UpdateShopInput defines the shop fields a seller may change.
type UpdateShopInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	LogoURL     *string `json:"logoUrl,omitempty" validate:"omitempty,max=512"`
}
