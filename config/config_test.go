package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl":     "",
			"publicBaseUrl": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"cache": map[string]any{
			"maintenanceTtl": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLIC_BASE_URL", want: "storage.public.base.url"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "CACHE_MAINTENANCETTL", want: "cache.maintenanceTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadSize)
	assert.Equal(t, "public/uploads", cfg.Storage.LocalDir)
	assert.Equal(t, 5*time.Minute, cfg.Cache.MaintenanceTTL)
	assert.Equal(t, 12, cfg.Catalog.CategoryLimit)
	assert.Equal(t, "en", cfg.Locale.Default)
	assert.Nil(t, cfg.Postgres)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Cache:   &CacheConfig{MaintenanceTTL: time.Minute},
		Catalog: &CatalogConfig{CategoryLimit: 6},
		Locale:  &LocaleConfig{Supported: []string{"ru", "en"}},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, time.Minute, cfg.Cache.MaintenanceTTL)
	assert.Equal(t, 6, cfg.Catalog.CategoryLimit)
	assert.Equal(t, "ru", cfg.Locale.Default)
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.SecretKey.Session = "0123456789abcdef0123"
	cfg.ApplyDefaults()

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "missing session secret", mutate: func(c *Config) { c.SecretKey.Session = "" }, wantErr: "Session"},
		{name: "short session secret", mutate: func(c *Config) { c.SecretKey.Session = "short" }, wantErr: "Session"},
		{name: "unknown pubsub provider", mutate: func(c *Config) { c.PubSub = &PubSubConfig{Provider: "kafka"} }, wantErr: "Provider"},
		{name: "google without topic", mutate: func(c *Config) { c.PubSub = &PubSubConfig{Provider: "google", ProjectID: "p"} }, wantErr: "topicId"},
		{name: "local without endpoint", mutate: func(c *Config) { c.PubSub = &PubSubConfig{Provider: "local"} }, wantErr: "localEndpoint"},
		{name: "bad qr level", mutate: func(c *Config) { c.QRCode.ErrorCorrectionLevel = "X" }, wantErr: "ErrorCorrectionLevel"},
		{name: "body limit below upload size", mutate: func(c *Config) { c.HTTP.MaxRequestBodySize = "6MB" }, wantErr: "maxRequestBodySize"},
		{name: "unparsable body limit", mutate: func(c *Config) { c.HTTP.MaxRequestBodySize = "lots" }, wantErr: "maxRequestBodySize"},
		{name: "default locale not supported", mutate: func(c *Config) { c.Locale.Default = "de" }, wantErr: "locale.default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()

	assert.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

func TestNew_LoadsRepositoryConfig(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.Equal(t, "8MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5*time.Minute, cfg.Cache.MaintenanceTTL)
	assert.Equal(t, "en", cfg.Locale.Default)
}

func TestNew_FailsFastOnInvalidOverride(t *testing.T) {
	t.Setenv("SECRETKEY_SESSION", "short")

	_, err := New()
	assert.ErrorContains(t, err, "Session")
}
