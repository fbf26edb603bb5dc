package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// inboxLimit is how many notifications a user sees at once.
const inboxLimit = 50

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{txManager: txManager, logger: logger}
}

// List returns the newest notifications and the unread count.
func (s *notificationService) List(ctx context.Context, userID uuid.UUID) (*usecase.NotificationList, error) {
	result := &usecase.NotificationList{Notifications: []*entity.Notification{}}
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewNotificationRepository()

		found, err := repo.ListByUser(ctx, userID, inboxLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		if found != nil {
			result.Notifications = found
		}

		unread, err := repo.CountUnread(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		result.UnreadCount = unread

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.NewNotificationRepository().MarkRead(ctx, notificationID, userID)
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to mark notification read")
	})
}

// MarkAllRead marks every unread notification of the caller and returns how many changed.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var updated int64
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NewNotificationRepository().MarkAllRead(ctx, userID)
		updated = n

		return errors.Wrap(err, "failed to mark notifications read")
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// Send writes one notification per recipient. Broadcast targets every existing user.
func (s *notificationService) Send(ctx context.Context, input *usecase.SendNotificationInput) (*usecase.SendNotificationOutput, error) {
	notificationType := entity.NotificationType(input.Type)
	if notificationType == "" {
		notificationType = entity.NotificationTypeInfo
	}
	if !notificationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown notification type " + input.Type)
	}
	if !input.Broadcast && len(input.UserIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoRecipients, "no userIds and broadcast not set")
	}

	var recipients []uuid.UUID
	if !input.Broadcast {
		ids, err := distinctRecipients(input.UserIDs)
		if err != nil {
			return nil, err
		}
		recipients = ids
	}

	var created int
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		if input.Broadcast {
			ids, err := userRepo.ListIDs(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to list users")
			}
			recipients = ids
		} else if err := requireUsers(ctx, userRepo, recipients); err != nil {
			return err
		}
		if len(recipients) == 0 {
			return errors.Wrap(domainerrors.ErrNoRecipients, "no users to notify")
		}

		now := time.Now()
		batch := make([]*entity.Notification, 0, len(recipients))
		for _, userID := range recipients {
			batch = append(batch, &entity.Notification{
				ID:        uuid.New(),
				UserID:    userID,
				Title:     strings.TrimSpace(input.Title),
				Message:   input.Message,
				Type:      notificationType,
				Link:      input.Link,
				CreatedAt: now,
			})
		}

		if err := repoFactory.NewNotificationRepository().BatchCreate(ctx, batch); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "recipient removed while sending")
			}

			return errors.Wrap(err, "failed to create notifications")
		}
		created = len(batch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	requestLogger(ctx, s.logger).Info("Notifications sent", slog.Int("count", created), slog.Bool("broadcast", input.Broadcast))

	return &usecase.SendNotificationOutput{Created: created}, nil
}

// distinctRecipients keeps request order and rejects nil or repeated ids,
// so the caller gets exactly one notification per listed id.
func distinctRecipients(ids []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("userIds must not contain a nil id")
		}
		if _, ok := seen[id]; ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("duplicate user id " + id.String())
		}
		seen[id] = struct{}{}
	}

	return ids, nil
}

func requireUsers(ctx context.Context, userRepo repository.UserRepository, ids []uuid.UUID) error {
	found, err := userRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to look up recipients")
	}
	if len(found) == len(ids) {
		return nil
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}
	missing := make([]string, 0, len(ids)-len(found))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id.String())
		}
	}

	return domainerrors.ErrUserNotFound.WithDetails("unknown user ids: " + strings.Join(missing, ", "))
}
