package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus controls storefront visibility.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "DRAFT"
	ProductStatusPublished ProductStatus = "PUBLISHED"
	ProductStatusArchived  ProductStatus = "ARCHIVED"
)

// IsValid checks if the ProductStatus is a known value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusArchived:
		return true
	default:
		return false
	}
}

// Product is a sellable item. ShopID is nil for products the platform sells itself.
type Product struct {
	ID             uuid.UUID        `json:"id"`
	CategoryID     uuid.UUID        `json:"categoryId"`
	ShopID         *uuid.UUID       `json:"shopId,omitempty"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description,omitempty"`
	ShortDesc      string           `json:"shortDesc,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compareAtPrice,omitempty"`
	Stock          int              `json:"stock"`
	Status         ProductStatus    `json:"status"`
	Images         []ProductImage   `json:"images"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ProductImage is one ordered picture of a product.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sortOrder"`
	IsPrimary bool      `json:"isPrimary"`
}

// PrimaryImage returns the image marked primary, falling back to the first one.
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}

	return ""
}

// IsPublished reports whether buyers can see and order the product.
func (p *Product) IsPublished() bool {
	return p.Status == ProductStatusPublished
}

// Favorite marks a product on a user's wish list.
type Favorite struct {
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
