package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status          string           `gorm:"type:varchar(16);not null;index"`
	Total           decimal.Decimal  `gorm:"type:numeric(20,2);not null"`
	AddressID       *uuid.UUID       `gorm:"type:uuid"`
	ShippingAddress string           `gorm:"type:text"`
	Note            string           `gorm:"type:text"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaidAt          *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product fields are snapshots.
type OrderItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ShopID       *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	ProductImage string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Quantity     int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
