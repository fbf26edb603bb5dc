package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when the order was not in any of the expected statuses.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderFilter narrows the staff order listing.
type OrderFilter struct {
	Status *entity.OrderStatus
	Offset int
	Limit  int
}

// OrderRepository persists orders and their item snapshots.
type OrderRepository interface {
	// Create persists the order and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads the order with items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, int64, error)

	// ListByShop returns orders with at least one item sold by shopID. Items are not filtered.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error)

	// TransitionStatus moves the order to next only if its current status is one of from.
	// Returns ErrOrderStatusConflict when no row matched.
	TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.OrderStatus, next entity.OrderStatus, at time.Time) error
}
