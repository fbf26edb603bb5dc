package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service   usecase.SettingsUsecase
	txManager *mockRepo.MockTransactionManager
	cache     *mockService.MockSettingsCache
	publisher *mockService.MockEventPublisher
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := mockService.NewMockSettingsCache(t)
	publisher := mockService.NewMockEventPublisher(t)

	return settingsServiceFixtures{
		service: NewSettingsService(SettingsServiceParams{
			TxManager: txManager,
			Cache:     cache,
			Publisher: publisher,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		cache:     cache,
		publisher: publisher,
	}
}

func TestSettingsService_Update_InvalidatesAndPublishes(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	actorID := uuid.New()
	enabled := true
	message := "  Back soon  "

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockSettingRepository(t)
		factory.EXPECT().NewSettingRepository().Return(repo)
		repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{SupportEmail: "help@shop.test"}, nil)
		repo.EXPECT().Save(ctx, mock.MatchedBy(func(s *entity.SiteSettings) bool {
			return s.MaintenanceMode && s.MaintenanceMessage == "Back soon" && s.SupportEmail == "help@shop.test"
		})).Return(nil)
	})
	fx.cache.EXPECT().Invalidate().Once()
	fx.publisher.EXPECT().PublishCacheEvent(ctx, mock.MatchedBy(func(e *service.CacheEvent) bool {
		return e.Type == constants.EventSettingsUpdated
	})).Return(nil)

	settings, err := fx.service.Update(ctx, actorID, &usecase.UpdateSettingsInput{
		MaintenanceMode:    &enabled,
		MaintenanceMessage: &message,
	})

	require.NoError(t, err)
	assert.True(t, settings.MaintenanceMode)
	assert.Equal(t, &actorID, settings.UpdatedBy)
}

func TestSettingsService_Update_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	disabled := false

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockSettingRepository(t)
		factory.EXPECT().NewSettingRepository().Return(repo)
		repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{MaintenanceMode: true}, nil)
		repo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	})
	fx.cache.EXPECT().Invalidate().Once()
	fx.publisher.EXPECT().PublishCacheEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	settings, err := fx.service.Update(ctx, uuid.New(), &usecase.UpdateSettingsInput{MaintenanceMode: &disabled})

	require.NoError(t, err)
	assert.False(t, settings.MaintenanceMode)
}

func TestSettingsService_Public_ReadsCache(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx).Return(&entity.SiteSettings{
		MaintenanceMode:    true,
		MaintenanceMessage: "Upgrading",
		SupportEmail:       "private@shop.test",
	}, nil)

	public, err := fx.service.Public(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.PublicSettings{MaintenanceMode: true, MaintenanceMessage: "Upgrading"}, public)
}

func TestSettingsService_HandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("settings event invalidates", func(t *testing.T) {
		fx := createTestSettingsService(t)
		fx.cache.EXPECT().Invalidate().Once()

		err := fx.service.HandleEvent(ctx, &service.CacheEvent{Type: constants.EventSettingsUpdated, Source: "storefront-2"})

		require.NoError(t, err)
	})

	t.Run("unknown event ignored", func(t *testing.T) {
		fx := createTestSettingsService(t)

		err := fx.service.HandleEvent(ctx, &service.CacheEvent{Type: "something.else"})

		require.NoError(t, err)
	})

	t.Run("nil event", func(t *testing.T) {
		fx := createTestSettingsService(t)

		require.Error(t, fx.service.HandleEvent(ctx, nil))
	})
}
