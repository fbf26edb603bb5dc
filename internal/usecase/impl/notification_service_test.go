package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Send_BroadcastReachesEveryUser(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	everyone := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	var written []*entity.Notification
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewNotificationRepository().Return(notificationRepo)

		userRepo.EXPECT().ListIDs(ctx).Return(everyone, nil)
		notificationRepo.EXPECT().BatchCreate(ctx, mock.Anything).
			Run(func(_ context.Context, batch []*entity.Notification) { written = batch }).
			Return(nil)
	})

	out, err := svc.Send(ctx, &usecase.SendNotificationInput{
		Title:     "Sale",
		Message:   "Everything -20%",
		Broadcast: true,
		UserIDs:   []uuid.UUID{uuid.New()},
	})

	require.NoError(t, err)
	assert.Equal(t, len(everyone), out.Created)
	require.Len(t, written, len(everyone))
	for i, n := range written {
		assert.Equal(t, everyone[i], n.UserID)
		assert.Equal(t, entity.NotificationTypeInfo, n.Type)
		assert.False(t, n.IsRead)
	}
}

func TestNotificationService_Send_OneRowPerListedID(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	listed := []uuid.UUID{first, second, third}

	var written []*entity.Notification
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewNotificationRepository().Return(notificationRepo)

		userRepo.EXPECT().ExistingIDs(ctx, listed).Return([]uuid.UUID{third, first, second}, nil)
		notificationRepo.EXPECT().BatchCreate(ctx, mock.Anything).
			Run(func(_ context.Context, batch []*entity.Notification) { written = batch }).
			Return(nil)
	})

	out, err := svc.Send(ctx, &usecase.SendNotificationInput{
		Title:   "Hello",
		Message: "Hi",
		Type:    "SYSTEM",
		UserIDs: listed,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, out.Created)
	require.Len(t, written, 3)
	for i, n := range written {
		assert.Equal(t, listed[i], n.UserID)
		assert.Equal(t, entity.NotificationTypeSystem, n.Type)
	}
}

func TestNotificationService_Send_UnknownRecipient(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().ExistingIDs(ctx, []uuid.UUID{known, unknown}).Return([]uuid.UUID{known}, nil)
	})

	_, err := svc.Send(ctx, &usecase.SendNotificationInput{
		Title:   "Hello",
		Message: "Hi",
		UserIDs: []uuid.UUID{known, unknown},
	})

	requireErrorCode(t, err, "USER_NOT_FOUND")
	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Contains(t, baseErr.Details(), unknown.String())
	assert.NotContains(t, baseErr.Details(), known.String())
}

func TestNotificationService_Send_RecipientDeletedDuringInsert(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewNotificationRepository().Return(notificationRepo)

		userRepo.EXPECT().ExistingIDs(ctx, []uuid.UUID{userID}).Return([]uuid.UUID{userID}, nil)
		notificationRepo.EXPECT().BatchCreate(ctx, mock.Anything).Return(repository.ErrUserNotFound)
	})

	_, err := svc.Send(ctx, &usecase.SendNotificationInput{
		Title:   "Hello",
		Message: "Hi",
		UserIDs: []uuid.UUID{userID},
	})

	requireErrorCode(t, err, "USER_NOT_FOUND")
}

func TestNotificationService_Send_Validation(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	repeated := uuid.New()

	tests := []struct {
		name  string
		input *usecase.SendNotificationInput
		code  string
	}{
		{
			name:  "no recipients",
			input: &usecase.SendNotificationInput{Title: "t", Message: "m"},
			code:  "NO_RECIPIENTS",
		},
		{
			name:  "unknown type",
			input: &usecase.SendNotificationInput{Title: "t", Message: "m", Type: "PROMO", Broadcast: true},
			code:  "VALIDATION_FAILED",
		},
		{
			name:  "repeated user id",
			input: &usecase.SendNotificationInput{Title: "t", Message: "m", UserIDs: []uuid.UUID{repeated, uuid.New(), repeated}},
			code:  "VALIDATION_FAILED",
		},
		{
			name:  "nil user id",
			input: &usecase.SendNotificationInput{Title: "t", Message: "m", UserIDs: []uuid.UUID{uuid.New(), uuid.Nil}},
			code:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), tt.input)
			requireErrorCode(t, err, tt.code)
		})
	}
}

func TestNotificationService_List(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewNotificationRepository().Return(repo)
		repo.EXPECT().ListByUser(ctx, userID, inboxLimit).Return(nil, nil)
		repo.EXPECT().CountUnread(ctx, userID).Return(int64(0), nil)
	})

	list, err := svc.List(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, list.Notifications)
	assert.Empty(t, list.Notifications)
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewNotificationService(txManager, newDiscardLogger())
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewNotificationRepository().Return(repo)
		repo.EXPECT().MarkRead(ctx, notificationID, userID).Return(repository.ErrNotificationNotFound)
	})

	err := svc.MarkRead(ctx, userID, notificationID)

	requireErrorCode(t, err, "NOTIFICATION_NOT_FOUND")
}
