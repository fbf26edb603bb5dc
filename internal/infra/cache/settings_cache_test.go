package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestSettingsCache_ServesFromMemoryUntilExpiry(t *testing.T) {
	repo := mockRepo.NewMockSettingRepository(t)
	availability := mockRepo.NewMockAvailability(t)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := newSettingsCache(repo, availability, 30*time.Second, clock.Now)
	ctx := context.Background()

	availability.EXPECT().Configured().Return(true)
	repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{MaintenanceMode: true}, nil).Once()

	first, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, first.MaintenanceMode)

	clock.Advance(29 * time.Second)
	second, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, second.MaintenanceMode)

	repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{MaintenanceMode: false}, nil).Once()
	clock.Advance(2 * time.Second)

	third, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, third.MaintenanceMode)
}

func TestSettingsCache_InvalidateForcesReload(t *testing.T) {
	repo := mockRepo.NewMockSettingRepository(t)
	availability := mockRepo.NewMockAvailability(t)
	clock := &fakeClock{now: time.Now()}
	c := newSettingsCache(repo, availability, time.Hour, clock.Now)
	ctx := context.Background()

	availability.EXPECT().Configured().Return(true)
	repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{MaintenanceMessage: "v1"}, nil).Once()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", got.MaintenanceMessage)

	c.Invalidate()
	repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{MaintenanceMessage: "v2"}, nil).Once()

	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.MaintenanceMessage)
}

func TestSettingsCache_ReturnsCopies(t *testing.T) {
	repo := mockRepo.NewMockSettingRepository(t)
	availability := mockRepo.NewMockAvailability(t)
	c := newSettingsCache(repo, availability, time.Hour, time.Now)
	ctx := context.Background()

	availability.EXPECT().Configured().Return(true)
	repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{MaintenanceMessage: "original"}, nil).Once()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	got.MaintenanceMessage = "mutated"

	again, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again.MaintenanceMessage)
}

func TestSettingsCache_WithoutDatabase(t *testing.T) {
	repo := mockRepo.NewMockSettingRepository(t)
	availability := mockRepo.NewMockAvailability(t)
	c := newSettingsCache(repo, availability, time.Hour, time.Now)

	availability.EXPECT().Configured().Return(false)

	got, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.False(t, got.MaintenanceMode)
}

func TestSettingsCache_LoadErrorIsNotCached(t *testing.T) {
	repo := mockRepo.NewMockSettingRepository(t)
	availability := mockRepo.NewMockAvailability(t)
	c := newSettingsCache(repo, availability, time.Hour, time.Now)
	ctx := context.Background()

	availability.EXPECT().Configured().Return(true)
	repo.EXPECT().Get(ctx).Return(nil, errors.New("connection refused")).Once()

	_, err := c.Get(ctx)
	require.Error(t, err)

	repo.EXPECT().Get(ctx).Return(&entity.SiteSettings{}, nil).Once()

	_, err = c.Get(ctx)
	require.NoError(t, err)
}
