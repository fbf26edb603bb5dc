package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Slug        string          `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	LogoURL     string          `gorm:"type:text"`
	Status      string          `gorm:"type:varchar(16);not null"`
	Balance     decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopVerificationModel mirrors the 'shop_verifications' table.
type ShopVerificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopName     string     `gorm:"type:varchar(100);not null"`
	Description  string     `gorm:"type:text"`
	ContactEmail string     `gorm:"type:varchar(255);not null"`
	ContactPhone string     `gorm:"type:varchar(32)"`
	DocumentURL  string     `gorm:"type:text"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	ReviewNote   string     `gorm:"type:text"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	ShopID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopVerificationModel) TableName() string {
	return "shop_verifications"
}
