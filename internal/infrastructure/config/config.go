package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port        string `env:"PORT, default=8080"`
	AppBaseURL  string `env:"APP_BASE_URL, default=http://localhost:8080"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
	LogPretty   bool   `env:"LOG_PRETTY, default=false"`

	JWTSecret                string  `env:"JWT_SECRET"`
	AccessTokenExpiryMinutes int     `env:"ACCESS_TOKEN_EXPIRY_MINUTES, default=60"`
	RateLimitPerSecond       float64 `env:"RATE_LIMIT_PER_SECOND, default=10"`
	// Registration gets its own per-IP budget, far below the global one.
	RegisterRateLimitPerSecond float64 `env:"REGISTER_RATE_LIMIT_PER_SECOND, default=0.2"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Email      EmailConfig
	YouTube    YouTubeConfig
	Gallery    GalleryConfig
	Google     GoogleConfig
	Superadmin SuperadminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DB_NAME, default=showcase"`
}

// RedisConfig is optional; an empty URL disables the metadata cache.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type EmailConfig struct {
	Host        string `env:"EMAIL_HOST, default=smtp.gmail.com"`
	Port        string `env:"EMAIL_PORT, default=587"`
	Username    string `env:"EMAIL_USERNAME"`
	AppPassword string `env:"EMAIL_APP_PASSWORD"`
	From        string `env:"EMAIL_FROM"`
}

type YouTubeConfig struct {
	APIKey                string `env:"YOUTUBE_API_KEY"`
	BaseURL               string `env:"YOUTUBE_API_BASE_URL, default=https://www.googleapis.com/youtube/v3"`
	MetadataTimeoutMS     int    `env:"METADATA_TIMEOUT_MS, default=3000"`
	CacheTTLMinutes       int    `env:"METADATA_CACHE_TTL_MINUTES, default=30"`
	EnrichmentConcurrency int    `env:"ENRICHMENT_CONCURRENCY, default=8"`
}

type GalleryConfig struct {
	DefaultPageSize     int    `env:"GALLERY_DEFAULT_PAGE_SIZE, default=12"`
	DefaultChannelTitle string `env:"DEFAULT_CHANNEL_TITLE, default=Agency Channel"`
}

type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}

// SuperadminConfig seeds the protected account at startup. Leaving it empty
// skips the bootstrap.
type SuperadminConfig struct {
	Username string `env:"SUPERADMIN_USERNAME"`
	Email    string `env:"SUPERADMIN_EMAIL"`
	Password string `env:"SUPERADMIN_PASSWORD"`
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom fills a Config from the given lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("load config: JWT_SECRET is required")
	}
	return &cfg, nil
}

func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

func (c *Config) GetFrontendURL() string {
	return c.FrontendURL
}

func (c *Config) GetAccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessTokenExpiryMinutes) * time.Minute
}

// GetMetadataTimeout bounds a single live metadata fetch.
func (c *Config) GetMetadataTimeout() time.Duration {
	return time.Duration(c.YouTube.MetadataTimeoutMS) * time.Millisecond
}

func (c *Config) GetMetadataCacheTTL() time.Duration {
	return time.Duration(c.YouTube.CacheTTLMinutes) * time.Minute
}

func (c *Config) GetEnrichmentConcurrency() int {
	return c.YouTube.EnrichmentConcurrency
}

func (c *Config) GetGalleryDefaultPageSize() int {
	if c.Gallery.DefaultPageSize < 1 {
		return 12
	}
	return c.Gallery.DefaultPageSize
}

func (c *Config) GetDefaultChannelTitle() string {
	return c.Gallery.DefaultChannelTitle
}
