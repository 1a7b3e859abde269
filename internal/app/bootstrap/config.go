// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/communityhub/internal/app/system/auditlog"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/communityhub/internal/app/system/normalize"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const defaultCORSOrigins = "http://localhost:5173,http://localhost:3000,http://localhost:8000,http://localhost," +
	"https://globalnepali.org,https://www.globalnepali.org,https://api.globalnepali.org"

// minSecretLen is the length below which a JWT secret only earns a warning.
const minSecretLen = 32

// appConfigKeys defines the configuration keys for communityhub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: COMMUNITYHUB_MONGO_URI, COMMUNITYHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "globalnepali", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 10, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 1, Desc: "MongoDB min connection pool size"},

	// Tokens and passwords
	{Name: "jwt_secret", Default: "", Desc: "HMAC secret for access tokens (required)"},
	{Name: "jwt_algorithm", Default: "HS256", Desc: "Token signing algorithm: HS256, HS384 or HS512"},
	{Name: "access_token_expire_minutes", Default: 10080, Desc: "Access token lifetime in minutes (default: 7 days)"},
	{Name: "bcrypt_cost", Default: auth.DefaultBcryptCost, Desc: "bcrypt work factor for new password digests"},
	{Name: "cors_allowed_origins", Default: defaultCORSOrigins, Desc: "Comma-separated list of allowed CORS origins"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email of the bootstrap admin (created or promoted on startup)"},
	{Name: "admin_password", Default: "", Desc: "Password for a newly created bootstrap admin"},
	{Name: "admin_full_name", Default: "Admin User", Desc: "Display name for a newly created bootstrap admin"},

	{Name: "seed_demo_data", Default: false, Desc: "Insert demo content when the collections are empty"},

	// Database deadlines
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document reads"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for lists and single-document writes"},
	{Name: "timeout_long", Default: "30s", Desc: "Deadline for multi-collection writes and seeding"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// COMMUNITYHUB_* environment variables and command-line flags with
// precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "COMMUNITYHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret:          appValues.String("jwt_secret"),
		JWTAlgorithm:       strings.ToUpper(strings.TrimSpace(appValues.String("jwt_algorithm"))),
		AccessTokenTTL:     time.Duration(appValues.Int("access_token_expire_minutes")) * time.Minute,
		BcryptCost:         appValues.Int("bcrypt_cost"),
		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),

		AdminEmail:    normalize.Email(appValues.String("admin_email")),
		AdminPassword: appValues.String("admin_password"),
		AdminFullName: normalize.Name(appValues.String("admin_full_name")),

		SeedDemoData: appValues.Bool("seed_demo_data"),

		TimeoutShort:  appValues.Duration("timeout_short", 0),
		TimeoutMedium: appValues.Duration("timeout_medium", 0),
		TimeoutLong:   appValues.Duration("timeout_long", 0),
	}

	return coreCfg, appCfg, nil
}

// splitOrigins turns a comma-separated list into trimmed, non-empty origins.
func splitOrigins(s string) []string {
	return normalize.List(strings.Split(s, ","))
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return errors.New("mongo_database must not be empty")
	}

	if appCfg.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	if len(appCfg.JWTSecret) < minSecretLen {
		logger.Warn("jwt_secret is shorter than recommended", zap.Int("min_length", minSecretLen))
	}
	if !auth.ValidAlgorithm(appCfg.JWTAlgorithm) {
		return fmt.Errorf("jwt_algorithm %q is not supported (use HS256, HS384 or HS512)", appCfg.JWTAlgorithm)
	}
	if appCfg.AccessTokenTTL <= 0 {
		return errors.New("access_token_expire_minutes must be positive")
	}
	if !auth.ValidCost(appCfg.BcryptCost) {
		return fmt.Errorf("bcrypt_cost %d is out of range", appCfg.BcryptCost)
	}

	for name, v := range map[string]string{"audit_log_auth": appCfg.AuditLogAuth, "audit_log_admin": appCfg.AuditLogAdmin} {
		if !auditlog.ValidSetting(v) {
			return fmt.Errorf("%s must be one of all, db, log, off (got %q)", name, v)
		}
	}

	if appCfg.AdminEmail != "" {
		if !inputval.IsValidEmail(appCfg.AdminEmail) {
			return fmt.Errorf("admin_email %q is not a valid email address", appCfg.AdminEmail)
		}
		if len(appCfg.AdminPassword) < 8 {
			return errors.New("admin_password must be at least 8 characters when admin_email is set")
		}
	}

	return nil
}
