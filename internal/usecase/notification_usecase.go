package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase is the in-app inbox.
type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) (*NotificationList, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Send(ctx context.Context, input *SendNotificationInput) (*SendNotificationOutput, error)
}

// NotificationList is a user's recent notifications.
type NotificationList struct {
	Notifications []*entity.Notification `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

// SendNotificationInput targets explicit users or everyone.
type SendNotificationInput struct {
	Title     string      `json:"title" validate:"required,max=200"`
	Message   string      `json:"message" validate:"required,max=4000"`
	Type      string      `json:"type" validate:"omitempty,oneof=INFO ORDER WALLET SUPPORT SHOP SYSTEM"`
	Link      string      `json:"link" validate:"omitempty,max=512"`
	UserIDs   []uuid.UUID `json:"userIds" validate:"omitempty,max=10000"`
	Broadcast bool        `json:"broadcast"`
}

// SendNotificationOutput reports how many rows were written.
type SendNotificationOutput struct {
	Created int `json:"created"`
}
