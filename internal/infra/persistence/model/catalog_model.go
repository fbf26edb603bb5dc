package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Slug        string     `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:text"`
	IsActive    bool       `gorm:"not null;index"`
	SortOrder   int        `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	ShopID         *uuid.UUID          `gorm:"type:uuid;index"`
	Name           string              `gorm:"type:varchar(200);not null"`
	Slug           string              `gorm:"type:varchar(220);uniqueIndex;not null"`
	Description    string              `gorm:"type:text"`
	ShortDesc      string              `gorm:"type:varchar(500)"`
	Price          decimal.Decimal     `gorm:"type:numeric(20,2);not null"`
	CompareAtPrice decimal.NullDecimal `gorm:"type:numeric(20,2)"`
	Stock          int                 `gorm:"not null"`
	Status         string              `gorm:"type:varchar(16);not null;index"`
	Images         []ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"not null"`
	IsPrimary bool      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// FavoriteModel mirrors the 'favorites' join table.
type FavoriteModel struct {
	UserID    uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
