package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopStatus is the moderation state of a shop.
type ShopStatus string

const (
	ShopStatusPending   ShopStatus = "PENDING"
	ShopStatusActive    ShopStatus = "ACTIVE"
	ShopStatusSuspended ShopStatus = "SUSPENDED"
)

// Shop is a seller storefront. Exactly one user owns a shop.
type Shop struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"ownerId"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	LogoURL     string          `json:"logoUrl,omitempty"`
	Status      ShopStatus      `json:"status"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IsActive reports whether the shop may sell.
func (s *Shop) IsActive() bool {
	return s != nil && s.Status == ShopStatusActive
}

// ShopVerification is a user's request to open a shop.
type ShopVerification struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"userId"`
	ShopName     string       `json:"shopName"`
	Description  string       `json:"description,omitempty"`
	ContactEmail string       `json:"contactEmail"`
	ContactPhone string       `json:"contactPhone,omitempty"`
	DocumentURL  string       `json:"documentUrl,omitempty"`
	Status       ReviewStatus `json:"status"`
	ReviewNote   string       `json:"reviewNote,omitempty"`
	ReviewedBy   *uuid.UUID   `json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time   `json:"reviewedAt,omitempty"`
	ShopID       *uuid.UUID   `json:"shopId,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
