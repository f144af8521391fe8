package config

import (
	"errors"
	"os"
)

// ServerConfig holds configuration for the Folio server.
type ServerConfig struct {
	Addr          string // Listen address (default ":8080")
	LogLevel      string // Log level: debug, info, warn, error
	LogFormat     string // Log format: text, json
	DBPath        string // SQLite database path (default ~/.folio/folio.db, ":memory:" for testing)
	Env           string // "development" or "production"; controls the Secure cookie flag
	SessionSecret string // HMAC key for session tokens; required at startup
	SitePath      string // Optional YAML site config file
	S3Bucket      string // Object-storage bucket for image uploads (empty disables uploads)
	S3Region      string // AWS region for the bucket
	S3Prefix      string // Key prefix inside the bucket (default "uploads/")
	BaseAssetURL  string // Public URL prefix for uploaded objects (default derived from bucket/region)
	StaticDir     string // Directory served under /static (default "web/static")
}

// ErrMissingSessionSecret is returned when no signing secret is configured.
// The process must refuse to start in this state rather than sign tokens
// with an empty key.
var ErrMissingSessionSecret = errors.New("FOLIO_SESSION_SECRET is not set")

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
		Env:       "development",
		S3Prefix:  "uploads/",
		StaticDir: "web/static",
	}
}

// FromEnv overlays FOLIO_* environment variables onto the config.
// Flags parsed in main take precedence over these.
func (c *ServerConfig) FromEnv() {
	overlay(&c.Addr, "FOLIO_ADDR")
	overlay(&c.LogLevel, "FOLIO_LOG_LEVEL")
	overlay(&c.LogFormat, "FOLIO_LOG_FORMAT")
	overlay(&c.DBPath, "FOLIO_DB")
	overlay(&c.Env, "FOLIO_ENV")
	overlay(&c.SessionSecret, "FOLIO_SESSION_SECRET")
	overlay(&c.SitePath, "FOLIO_SITE_CONFIG")
	overlay(&c.S3Bucket, "FOLIO_S3_BUCKET")
	overlay(&c.S3Region, "FOLIO_S3_REGION")
	overlay(&c.S3Prefix, "FOLIO_S3_PREFIX")
	overlay(&c.BaseAssetURL, "FOLIO_ASSET_URL")
	overlay(&c.StaticDir, "FOLIO_STATIC_DIR")
}

// Validate checks startup invariants. A missing session secret is fatal:
// signing with an undefined key must never be deferred to the first request.
func (c *ServerConfig) Validate() error {
	if c.SessionSecret == "" {
		return ErrMissingSessionSecret
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c *ServerConfig) Production() bool {
	return c.Env == "production"
}

func overlay(dst *string, envVar string) {
	if v := os.Getenv(envVar); v != "" {
		*dst = v
	}
}
