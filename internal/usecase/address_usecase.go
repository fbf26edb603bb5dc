package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase manages a user's shipping addresses.
type AddressUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)
	Update(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
}

// CreateAddressInput defines a new shipping address.
type CreateAddressInput struct {
	Label         string `json:"label" validate:"omitempty,max=64"`
	RecipientName string `json:"recipientName" validate:"required,max=120"`
	Phone         string `json:"phone" validate:"required,max=32"`
	Country       string `json:"country" validate:"required,max=64"`
	City          string `json:"city" validate:"required,max=120"`
	Street        string `json:"street" validate:"required,max=255"`
	PostalCode    string `json:"postalCode" validate:"omitempty,max=16"`
	IsDefault     bool   `json:"isDefault"`
}

// UpdateAddressInput defines a partial address update.
type UpdateAddressInput struct {
	Label         *string `json:"label,omitempty" validate:"omitempty,max=64"`
	RecipientName *string `json:"recipientName,omitempty" validate:"omitempty,min=1,max=120"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=1,max=32"`
	Country       *string `json:"country,omitempty" validate:"omitempty,min=1,max=64"`
	City          *string `json:"city,omitempty" validate:"omitempty,min=1,max=120"`
	Street        *string `json:"street,omitempty" validate:"omitempty,min=1,max=255"`
	PostalCode    *string `json:"postalCode,omitempty" validate:"omitempty,max=16"`
	IsDefault     *bool   `json:"isDefault,omitempty"`
}
