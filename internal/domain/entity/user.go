package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is a storefront account. Sellers are users with CanSell set and an active shop.
type User struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone,omitempty"`
	AvatarURL    string          `json:"avatarUrl,omitempty"`
	Locale       string          `json:"locale,omitempty"`
	Role         Role            `json:"role"`
	Balance      decimal.Decimal `json:"balance"`
	CanSell      bool            `json:"canSell"`
	PasswordHash string          `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
