// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInsufficientBalance is returned when a conditional debit matched no row.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Query  string
	Role   *entity.Role
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the profile columns of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateAccess changes role and/or the seller flag. Nil arguments are left untouched.
	UpdateAccess(ctx context.Context, id uuid.UUID, role *entity.Role, canSell *bool) error

	// List returns a page of users and the total match count.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// ListIDs returns the id of every user, used for broadcasts.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)

	// ExistingIDs returns the subset of ids that belong to a user.
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	// CreditBalance adds amount to the balance in a single statement.
	CreditBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// DebitBalance subtracts amount only when the balance covers it.
	// Returns ErrInsufficientBalance when it does not.
	DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}
