// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	governmentfeature "github.com/volunhub/volunhub/internal/app/features/government"
	healthfeature "github.com/volunhub/volunhub/internal/app/features/health"
	loginfeature "github.com/volunhub/volunhub/internal/app/features/login"
	ngoconsolefeature "github.com/volunhub/volunhub/internal/app/features/ngoconsole"
	ngosfeature "github.com/volunhub/volunhub/internal/app/features/ngos"
	notificationsfeature "github.com/volunhub/volunhub/internal/app/features/notifications"
	projectsfeature "github.com/volunhub/volunhub/internal/app/features/projects"
	registerfeature "github.com/volunhub/volunhub/internal/app/features/register"
	volunteersfeature "github.com/volunhub/volunhub/internal/app/features/volunteers"
	"github.com/volunhub/volunhub/internal/app/store/audit"
	notificationstore "github.com/volunhub/volunhub/internal/app/store/notifications"
	userstore "github.com/volunhub/volunhub/internal/app/store/users"
	"github.com/volunhub/volunhub/internal/app/system/auditlog"
	"github.com/volunhub/volunhub/internal/app/system/auth"
	"github.com/volunhub/volunhub/internal/app/system/notify"
	"github.com/volunhub/volunhub/internal/app/system/ratelimit"
	"github.com/volunhub/volunhub/internal/app/system/reqlog"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// VolunHub initializes the token and password services, applies the
// bearer-token auth middleware, and mounts the JSON API routers: auth
// (register/login), NGO directory, projects, volunteer console, the
// Government review console, the NGO review console, and notifications.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.VolunHubMongoDatabase

	tokens, err := auth.NewTokenService(appCfg.TokenSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token service init failed", zap.Error(err))
		return nil, err
	}
	passwords := auth.NewPasswordServiceWithCost(appCfg.BcryptCost)

	// Set up the UserFetcher so LoadUser resolves fresh user data on each
	// request. Role changes and approval decisions take effect immediately
	// instead of riding out the token lifetime.
	authMgr := auth.NewManager(tokens, logger)
	authMgr.SetUserFetcher(userstore.NewFetcher(db))

	// One dispatcher shared by every feature that emits notifications.
	dispatcher := notify.NewDispatcher(notificationstore.New(db), logger)

	// Audit trail for approval verdicts and destructive admin actions.
	auditLogger := auditlog.New(audit.New(db), logger, auditlog.Config{
		Decisions: appCfg.AuditLogDecisions,
		Admin:     appCfg.AuditLogAdmin,
	})

	r := chi.NewRouter()

	r.Use(reqlog.Middleware(logger))

	// Global auth middleware: loads the bearer token's user into context
	// when present. This makes the current user available to all handlers
	// via auth.CurrentUser(r).
	r.Use(authMgr.LoadUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.VolunHubMongoClient, logger)
	r.Route("/health", func(r chi.Router) {
		healthHandler.MountRoutes(r)
	})

	// Authentication
	registerHandler := registerfeature.NewHandler(db, passwords, dispatcher, logger)
	loginHandler := loginfeature.NewHandler(db, tokens, passwords, logger)
	loginHandler.Limiter = ratelimit.NewLoginLimiter()
	r.Route("/auth", func(r chi.Router) {
		registerHandler.MountRoutes(r)
		loginHandler.MountRoutes(r)
	})

	// NGO directory and profiles
	ngosHandler := ngosfeature.NewHandler(db, dispatcher, logger)
	ngosHandler.Audit = auditLogger
	r.Route("/ngos", func(r chi.Router) {
		ngosHandler.MountRoutes(r, authMgr)
	})

	// Projects and membership
	projectsHandler := projectsfeature.NewHandler(db, dispatcher, logger)
	projectsHandler.Audit = auditLogger
	r.Route("/projects", func(r chi.Router) {
		projectsHandler.MountRoutes(r, authMgr)
	})

	// Volunteer profile and participation
	volunteersHandler := volunteersfeature.NewHandler(db, logger)
	r.Route("/volunteers", func(r chi.Router) {
		volunteersHandler.MountRoutes(r, authMgr)
	})

	// Government review console
	governmentHandler := governmentfeature.NewHandler(db, logger)
	r.Route("/government", func(r chi.Router) {
		governmentHandler.MountRoutes(r, authMgr)
	})

	// NGO review console for affiliated volunteers
	ngoconsoleHandler := ngoconsolefeature.NewHandler(db, dispatcher, logger)
	ngoconsoleHandler.Audit = auditLogger
	r.Route("/ngo", func(r chi.Router) {
		ngoconsoleHandler.MountRoutes(r, authMgr)
	})

	// Notification inbox and preferences
	notificationsHandler := notificationsfeature.NewHandler(db, logger)
	r.Route("/notifications", func(r chi.Router) {
		notificationsHandler.MountRoutes(r, authMgr)
	})

	return r, nil
}
