package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// BatchCreate persists many notifications in chunks for broadcasts.
	BatchCreate(ctx context.Context, notifications []*entity.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
