package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositRequestModel mirrors the 'deposit_requests' table.
type DepositRequestModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	Currency   string          `gorm:"type:varchar(16);not null"`
	TxHash     string          `gorm:"type:varchar(255);not null"`
	Status     string          `gorm:"type:varchar(16);not null;index"`
	ReviewNote string          `gorm:"type:text"`
	ReviewedBy *uuid.UUID      `gorm:"type:uuid"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DepositRequestModel) TableName() string {
	return "deposit_requests"
}

// WithdrawalRequestModel mirrors the 'withdrawal_requests' table.
type WithdrawalRequestModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopID        *uuid.UUID      `gorm:"type:uuid;index"`
	Source        string          `gorm:"type:varchar(8);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	Currency      string          `gorm:"type:varchar(16);not null"`
	WalletAddress string          `gorm:"type:varchar(255);not null"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	ReviewNote    string          `gorm:"type:text"`
	ReviewedBy    *uuid.UUID      `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WithdrawalRequestModel) TableName() string {
	return "withdrawal_requests"
}

// CryptoAddressModel mirrors the 'crypto_addresses' table, one row per currency.
type CryptoAddressModel struct {
	Currency  string     `gorm:"type:varchar(16);primaryKey"`
	Address   string     `gorm:"type:varchar(255);not null"`
	Network   string     `gorm:"type:varchar(32)"`
	IsActive  bool       `gorm:"not null"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CryptoAddressModel) TableName() string {
	return "crypto_addresses"
}
