// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	articlesfeature "github.com/dalemusser/communityhub/internal/app/features/articles"
	errorsfeature "github.com/dalemusser/communityhub/internal/app/features/errors"
	eventsfeature "github.com/dalemusser/communityhub/internal/app/features/events"
	healthfeature "github.com/dalemusser/communityhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/communityhub/internal/app/features/login"
	sponsorsfeature "github.com/dalemusser/communityhub/internal/app/features/sponsors"
	usersfeature "github.com/dalemusser/communityhub/internal/app/features/users"
	volunteersfeature "github.com/dalemusser/communityhub/internal/app/features/volunteers"
	"github.com/dalemusser/communityhub/internal/app/store/audit"
	userstore "github.com/dalemusser/communityhub/internal/app/store/users"
	"github.com/dalemusser/communityhub/internal/app/system/auditlog"
	"github.com/dalemusser/communityhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. The JSON API lives under /api/v1; /health and /
// sit at the root for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenService(appCfg.JWTSecret, appCfg.JWTAlgorithm, appCfg.AccessTokenTTL)
	if err != nil {
		logger.Error("token service init failed", zap.Error(err))
		return nil, err
	}

	// Fresh user data on each request, so role changes and disabled accounts
	// take effect immediately.
	authn := auth.NewAuthenticator(tokens, userstore.NewFetcher(deps.MongoDatabase), logger)

	auditLog := auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	errLog := errorsfeature.NewErrorLogger(logger)
	db := deps.MongoDatabase

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Get("/", healthHandler.ServeRoot)

	r.Route("/api/v1", func(api chi.Router) {
		// Authentication
		loginHandler := loginfeature.NewHandler(db, tokens, auditLog, appCfg.BcryptCost, errLog, logger)
		api.Mount("/auth", loginfeature.Routes(loginHandler, authn))

		usersHandler := usersfeature.NewHandler(db, auditLog, errLog, logger)
		api.Mount("/users", usersfeature.Routes(usersHandler, authn))

		// Content
		eventsHandler := eventsfeature.NewHandler(db, errLog, logger)
		api.Mount("/events", eventsfeature.Routes(eventsHandler, authn))

		articlesHandler := articlesfeature.NewHandler(db, errLog, logger)
		api.Mount("/articles", articlesfeature.Routes(articlesHandler, authn))

		volunteersHandler := volunteersfeature.NewHandler(db, errLog, logger)
		api.Mount("/volunteers", volunteersfeature.Routes(volunteersHandler, authn))

		sponsorsHandler := sponsorsfeature.NewHandler(db, errLog, logger)
		api.Mount("/sponsors", sponsorsfeature.Routes(sponsorsHandler, authn))
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		errorsfeature.WriteDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		errorsfeature.WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r, nil
}
