// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/communityhub/internal/app/system/timeouts"
	"github.com/dalemusser/communityhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})
	cur := timeouts.Current()
	logger.Info("database timeouts",
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("long", cur.Long))

	var admin *models.User
	if appCfg.AdminEmail != "" {
		u, err := ensureAdmin(ctx, deps, appCfg, logger)
		if err != nil {
			return err
		}
		admin = u
	}

	if appCfg.SeedDemoData {
		if admin == nil {
			logger.Warn("seed_demo_data is set but admin_email is empty; skipping demo data")
			return nil
		}
		seedCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Long(), logger, "seed demo data")
		defer cancel()
		if err := seedDemoData(seedCtx, deps.MongoDatabase, *admin, appCfg.BcryptCost, logger); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}

// ensureAdmin creates the configured admin, or promotes an existing account
// with that email to admin and superuser.
func ensureAdmin(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) (*models.User, error) {
	digest, err := auth.HashPassword(appCfg.AdminPassword, appCfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	u, created, err := userstore.New(deps.MongoDatabase).EnsureAdmin(ctx, appCfg.AdminEmail, appCfg.AdminFullName, digest)
	if err != nil {
		logger.Error("ensure admin failed", zap.String("email", appCfg.AdminEmail), zap.Error(err))
		return nil, fmt.Errorf("ensure admin: %w", err)
	}
	if created {
		logger.Info("created admin user", zap.String("email", u.Email), zap.String("user_id", u.ID.Hex()))
	} else {
		logger.Info("admin user present", zap.String("email", u.Email), zap.String("user_id", u.ID.Hex()))
	}
	return u, nil
}
