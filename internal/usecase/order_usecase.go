package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase covers buyer checkout and the staff order desk.
type OrderUsecase interface {
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetMine(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, query *OrderListQuery) (*OrderPage, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, input *OrderStatusInput) (*entity.Order, error)
}

// CheckoutLine is one cart line.
type CheckoutLine struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=999"`
}

// CheckoutInput is the buyer's cart at checkout time.
type CheckoutInput struct {
	Items     []CheckoutLine `json:"items" validate:"required,min=1,max=100,dive"`
	AddressID *uuid.UUID     `json:"addressId,omitempty"`
	Note      string         `json:"note" validate:"omitempty,max=1000"`
}

// OrderListQuery filters the staff order listing.
type OrderListQuery struct {
	PageQuery
	Status string `query:"status" validate:"omitempty,oneof=PENDING PAID SHIPPED DELIVERED CANCELLED"`
}

// OrderPage is one page of orders.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// OrderStatusInput requests an order status transition.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID SHIPPED DELIVERED CANCELLED"`
}
