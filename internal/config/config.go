package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App    AppConfig
	Blob   BlobConfig
	Redis  RedisConfig
	Admin  AdminConfig
	Upload UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type BlobConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string // portfolio
	UseSSL    bool   // false for local
	// TimeoutSeconds bounds every remote call so a slow store never
	// stalls a request; timeouts degrade to the fallback path.
	TimeoutSeconds int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
}

type AdminConfig struct {
	// PasswordHash is a bcrypt hash of the admin password. Password is
	// the plain-text alternative for local development. When both are
	// empty the admin gate is disabled (the shipped site had no API
	// auth at all; the gate is a placeholder, not a security boundary).
	PasswordHash string
	Password     string
	JWTSecret    string
	TokenExpiry  int // hours
}

type UploadConfig struct {
	MaxBytes       int64
	DefaultPrefix  string
	PlaceholderURL string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "portfolio-backend"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Blob: BlobConfig{
			Endpoint:       getEnv("BLOB_ENDPOINT", "localhost:9000"),
			AccessKey:      getEnv("BLOB_ACCESS_KEY", "minioadmin"),
			SecretKey:      getEnv("BLOB_SECRET_KEY", "minioadmin"),
			Bucket:         getEnv("BLOB_BUCKET", "portfolio"),
			UseSSL:         getEnvBool("BLOB_USE_SSL", false),
			TimeoutSeconds: getEnvInt("BLOB_TIMEOUT_SECONDS", 5),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:    getEnv("ADMIN_JWT_SECRET", "change-me-in-production"),
			TokenExpiry:  getEnvInt("ADMIN_TOKEN_EXPIRY_HOURS", 24),
		},
		Upload: UploadConfig{
			MaxBytes:       int64(getEnvInt("UPLOAD_MAX_MB", 10)) * 1024 * 1024,
			DefaultPrefix:  getEnv("UPLOAD_DEFAULT_PREFIX", "uploads/"),
			PlaceholderURL: getEnv("UPLOAD_PLACEHOLDER_URL", "/screen.png"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config is usable for the selected environment.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Admin.JWTSecret == "change-me-in-production" {
			return fmt.Errorf("ADMIN_JWT_SECRET must be set in production")
		}
		if c.Admin.PasswordHash == "" && c.Admin.Password == "" {
			fmt.Println("WARNING: no admin password configured - admin endpoints are open")
		}
	}

	if c.Blob.TimeoutSeconds <= 0 {
		return fmt.Errorf("BLOB_TIMEOUT_SECONDS must be positive")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_MB must be positive")
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

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
