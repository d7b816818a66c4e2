package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is populated from environment variables at startup.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Content  ContentConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	MinIO    MinIOConfig
	Leads    LeadsConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	PublicURL   string // public base URL of the site, used in email bodies
}

// DatabaseConfig describes the remote (Supabase-hosted Postgres) backend.
// When it is not configured the data layer falls back to local JSON files.
type DatabaseConfig struct {
	URL        string // postgres connection URL (empty = no remote backend)
	ServiceKey string // supabase service role key
	HostMarker string // substring the URL must contain to be considered remote
	MaxConns   int
	MinConns   int
}

// RemoteConfigured reports whether the remote backend should be used.
// The URL must be present, carry the expected host marker and come with a
// credential. Anything else selects the local file backend.
func (d DatabaseConfig) RemoteConfigured() bool {
	if d.URL == "" || d.ServiceKey == "" {
		return false
	}
	return strings.Contains(d.URL, d.HostMarker)
}

// ContentConfig locates the local JSON file backend.
type ContentConfig struct {
	Dir string // directory holding one <collection>.json per collection
}

type RedisConfig struct {
	Host     string // empty disables the lead rate limiter
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type SMTPConfig struct {
	Host          string
	Port          string
	From          string
	OperatorEmail string // receives the lead summary
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Configured reports whether object storage can be used for uploads.
func (m MinIOConfig) Configured() bool {
	return m.Endpoint != "" && m.AccessKey != "" && m.SecretKey != ""
}

type LeadsConfig struct {
	RateLimitPerHour int // per client IP, 0 disables
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Vitrine API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			PublicURL:   getEnv("PUBLIC_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			URL:        getEnv("SUPABASE_DB_URL", ""),
			ServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
			HostMarker: getEnv("SUPABASE_HOST_MARKER", "supabase."),
			MaxConns:   getEnvInt("DB_MAX_CONNS", 10),
			MinConns:   getEnvInt("DB_MIN_CONNS", 2),
		},
		Content: ContentConfig{
			Dir: getEnv("CONTENT_DIR", "data"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		SMTP: SMTPConfig{
			Host:          getEnv("SMTP_HOST", "localhost"),
			Port:          getEnv("SMTP_PORT", "1025"),
			From:          getEnv("EMAIL_FROM", "noreply@vitrine.dev"),
			OperatorEmail: getEnv("OPERATOR_EMAIL", "contact@vitrine.dev"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "vitrine"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Leads: LeadsConfig{
			RateLimitPerHour: getEnvInt("LEAD_RATE_LIMIT_PER_HOUR", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for a usable state.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if !c.Database.RemoteConfigured() {
			fmt.Println("WARNING: remote database not configured - content served from local files")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
