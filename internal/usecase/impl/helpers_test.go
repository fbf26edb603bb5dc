package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// expectTx registers one Execute call that runs the callback against a fresh factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// expectNotification registers the best-effort notification transaction and captures what was written.
func expectNotification(t *testing.T, txManager *mockRepo.MockTransactionManager, captured **entity.Notification) {
	t.Helper()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewNotificationRepository().Return(notificationRepo)
		notificationRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
			Run(func(_ context.Context, n *entity.Notification) {
				if captured != nil {
					*captured = n
				}
			}).
			Return(nil)
	})
}

// requireErrorCode asserts that err carries the given business error code.
func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}
