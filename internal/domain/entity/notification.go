// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorises a notification for icons and filtering.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "INFO"
	NotificationTypeOrder   NotificationType = "ORDER"
	NotificationTypeWallet  NotificationType = "WALLET"
	NotificationTypeSupport NotificationType = "SUPPORT"
	NotificationTypeShop    NotificationType = "SHOP"
	NotificationTypeSystem  NotificationType = "SYSTEM"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeOrder, NotificationTypeWallet,
		NotificationTypeSupport, NotificationTypeShop, NotificationTypeSystem:
		return true
	default:
		return false
	}
}

// Notification is an in-app message addressed to exactly one user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`        // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"userId"`    // The recipient.
	Title     string           `json:"title"`     // Short headline.
	Message   string           `json:"message"`   // Body text.
	Type      NotificationType `json:"type"`      // Category used by the client for icons.
	Link      string           `json:"link"`      // Optional in-app link, e.g. /orders/{id}.
	IsRead    bool             `json:"isRead"`    // Whether the user has seen it.
	CreatedAt time.Time        `json:"createdAt"` // Timestamp of when the notification was created.
}
