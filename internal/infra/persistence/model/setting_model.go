package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettingsID is the primary key of the single settings row.
const SiteSettingsID = 1

// SiteSettingsModel mirrors the 'site_settings' table.
type SiteSettingsModel struct {
	ID                 int        `gorm:"primaryKey;autoIncrement:false"`
	MaintenanceMode    bool       `gorm:"not null"`
	MaintenanceMessage string     `gorm:"type:text"`
	SupportEmail       string     `gorm:"type:varchar(255)"`
	UpdatedBy          *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

// All lists every model for AutoMigrate, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&CategoryModel{},
		&ShopModel{},
		&ShopVerificationModel{},
		&ProductModel{},
		&ProductImageModel{},
		&FavoriteModel{},
		&OrderModel{},
		&OrderItemModel{},
		&DepositRequestModel{},
		&WithdrawalRequestModel{},
		&CryptoAddressModel{},
		&NotificationModel{},
		&SupportTicketModel{},
		&TicketMessageModel{},
		&SiteSettingsModel{},
	}
}
