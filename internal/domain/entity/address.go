package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address owned by a single user.
// At most one address per user carries IsDefault.
type Address struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Label         string    `json:"label"`
	RecipientName string    `json:"recipientName"`
	Phone         string    `json:"phone"`
	Country       string    `json:"country"`
	City          string    `json:"city"`
	Street        string    `json:"street"`
	PostalCode    string    `json:"postalCode"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FullAddress renders the address as a single line for order snapshots.
func (a *Address) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.RecipientName, a.Street, a.City, a.PostalCode, a.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, ", ")
}
