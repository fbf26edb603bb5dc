// Package cache holds in-process caches with explicit lifetimes.
package cache

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// settingsCache keeps the last loaded site settings for ttl.
// Other instances only see a change after their own copy expires or a push event invalidates it.
type settingsCache struct {
	repo         repository.SettingRepository
	availability repository.Availability
	ttl          time.Duration
	now          func() time.Time

	mu        sync.RWMutex
	value     *entity.SiteSettings
	expiresAt time.Time
}

// NewSettingsCache is the Fx constructor for the maintenance-mode cache.
func NewSettingsCache(cfg *config.Config, repo repository.SettingRepository, availability repository.Availability) service.SettingsCache {
	return newSettingsCache(repo, availability, cfg.Cache.MaintenanceTTL, time.Now)
}

func newSettingsCache(repo repository.SettingRepository, availability repository.Availability, ttl time.Duration, now func() time.Time) *settingsCache {
	return &settingsCache{
		repo:         repo,
		availability: availability,
		ttl:          ttl,
		now:          now,
	}
}

// Get returns a copy of the cached settings, loading them when absent or expired.
func (c *settingsCache) Get(ctx context.Context) (*entity.SiteSettings, error) {
	if !c.availability.Configured() {
		return &entity.SiteSettings{}, nil
	}

	c.mu.RLock()
	if c.value != nil && c.now().Before(c.expiresAt) {
		v := *c.value
		c.mu.RUnlock()

		return &v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the write lock.
	if c.value != nil && c.now().Before(c.expiresAt) {
		v := *c.value

		return &v, nil
	}

	settings, err := c.repo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load site settings")
	}

	c.value = settings
	c.expiresAt = c.now().Add(c.ttl)
	v := *settings

	return &v, nil
}

// Invalidate drops the cached value so the next Get reloads it.
func (c *settingsCache) Invalidate() {
	c.mu.Lock()
	c.value = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
