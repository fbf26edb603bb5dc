package config

import (
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPort               = 8080
	defaultMaxRequestBodySize = "8MB"
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultMaintenanceTTL     = 5 * time.Minute
	defaultMaxUploadSize      = 5 << 20
	defaultUploadDir          = "public/uploads"

	// Room for multipart boundaries and form fields on top of the file itself.
	multipartOverhead = 1 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AppURL is the public origin used to build absolute redirects behind a proxy.
		AppURL            string `json:"appUrl" yaml:"appUrl"`
		TrustProxyHeaders bool   `json:"trustProxyHeaders" yaml:"trustProxyHeaders"`
		Timeouts          struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is optional. When it is absent every database-backed route answers 503.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"-"`

	SecretKey struct {
		Session string `json:"session" yaml:"session" validate:"required,min=16"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub carries settings-invalidation events between instances
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Locale *LocaleConfig `json:"locale" yaml:"locale"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost" validate:"omitempty,min=4,max=31"`
	SessionTTL   time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
	CookieDomain string        `json:"cookieDomain" yaml:"cookieDomain"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// StorageConfig defines where uploaded images are written
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. gs://fashion-uploads. Empty means local filesystem.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prefixed to object keys when the bucket is used.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// LocalDir is the filesystem fallback root, served under /uploads.
	LocalDir string `json:"localDir" yaml:"localDir"`

	MaxUploadSize int64 `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// CacheConfig defines in-process cache lifetimes
type CacheConfig struct {
	MaintenanceTTL time.Duration `json:"maintenanceTtl" yaml:"maintenanceTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// CredentialsPath points at a service account file; empty uses ambient credentials
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RateLimitConfig defines per-client limits on sensitive endpoints
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"oneof=L M Q H"`
}

// CatalogConfig defines listing limits for the storefront
type CatalogConfig struct {
	CategoryLimit   int `json:"categoryLimit" yaml:"categoryLimit"`
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

// LocaleConfig defines the languages the storefront renders
type LocaleConfig struct {
	Supported []string `json:"supported" yaml:"supported"`
	Default   string   `json:"default" yaml:"default" validate:"required"`
}

// ApplyDefaults fills optional sections so callers never see nil.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.LocalDir == "" {
		cfg.Storage.LocalDir = defaultUploadDir
	}
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.MaintenanceTTL <= 0 {
		cfg.Cache.MaintenanceTTL = defaultMaintenanceTTL
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{RequestsPerSecond: 5, Burst: 10}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.CategoryLimit <= 0 {
		cfg.Catalog.CategoryLimit = 12
	}
	if cfg.Catalog.DefaultPageSize <= 0 {
		cfg.Catalog.DefaultPageSize = 24
	}
	if cfg.Catalog.MaxPageSize <= 0 {
		cfg.Catalog.MaxPageSize = 100
	}
	if cfg.Locale == nil || len(cfg.Locale.Supported) == 0 {
		cfg.Locale = &LocaleConfig{Supported: []string{"en", "ru"}, Default: "en"}
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = cfg.Locale.Supported[0]
	}
}

// New loads config.yaml, overlays the environment, fills defaults and validates the result.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot run with. Call it after ApplyDefaults.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	// Echo reads "MB" as MiB; humanize reads it as 10^6, so this check errs on the strict side.
	bodyLimit, err := humanize.ParseBytes(cfg.HTTP.MaxRequestBodySize)
	if err != nil {
		return errors.Wrapf(err, "invalid config: http.maxRequestBodySize %q", cfg.HTTP.MaxRequestBodySize)
	}
	if int64(bodyLimit) < cfg.Storage.MaxUploadSize+multipartOverhead {
		return errors.Errorf("invalid config: http.maxRequestBodySize %s must exceed storage.maxUploadSize %s by at least %s",
			cfg.HTTP.MaxRequestBodySize, humanize.IBytes(uint64(cfg.Storage.MaxUploadSize)), humanize.IBytes(multipartOverhead))
	}
	if !slices.Contains(cfg.Locale.Supported, cfg.Locale.Default) {
		return errors.Errorf("invalid config: locale.default %q is not in locale.supported", cfg.Locale.Default)
	}
	if cfg.PubSub == nil {
		return nil
	}

	switch cfg.PubSub.Provider {
	case "google":
		if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
			return errors.New("invalid config: pubsub.projectId and pubsub.topicId are required for google")
		}
	case "local":
		if cfg.PubSub.LocalEndpoint == "" {
			return errors.New("invalid config: pubsub.localEndpoint is required for local")
		}
	}

	return nil
}
