// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration, which already covers
// ports, TLS, log level and request limits.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer tokens
	JWTSecret          string
	JWTAlgorithm       string        // HS256, HS384 or HS512
	AccessTokenTTL     time.Duration // from access_token_expire_minutes
	BcryptCost         int
	CORSAllowedOrigins []string

	// Audit logging: "all", "db", "log" or "off" per category
	AuditLogAuth  string
	AuditLogAdmin string

	// Bootstrap admin; skipped when AdminEmail is blank
	AdminEmail    string
	AdminPassword string
	AdminFullName string

	SeedDemoData bool

	// Per-operation database deadlines; zero keeps the built-in default
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
