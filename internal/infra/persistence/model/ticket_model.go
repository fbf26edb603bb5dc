package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicketModel mirrors the 'support_tickets' table.
type SupportTicketModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Subject   string               `gorm:"type:varchar(200);not null"`
	Status    string               `gorm:"type:varchar(16);not null;index"`
	Messages  []TicketMessageModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}

// TicketMessageModel mirrors the 'ticket_messages' table.
type TicketMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	IsStaff   bool      `gorm:"not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
