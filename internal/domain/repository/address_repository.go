package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found or belongs to another user.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for shipping address persistence.
// Every lookup is scoped by user so callers can never touch another user's rows.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Address, error)

	// ListByUser returns the user's addresses, default first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Update modifies an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ClearDefault unsets isDefault on every address of the user.
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
