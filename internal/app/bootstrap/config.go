// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// minTokenSecretLen is the shortest HMAC secret accepted outside dev.
const minTokenSecretLen = 32

// appConfigKeys defines the configuration keys for VolunHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_secret, etc.
//   - Environment variables: VOLUNHUB_MONGO_URI, VOLUNHUB_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "volunhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Token signing
	{Name: "token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC secret for bearer tokens (must be strong in production)"},
	{Name: "token_ttl", Default: "24h", Desc: "Bearer token lifetime (e.g., 24h, 12h, 90m)"},

	// Password hashing
	{Name: "bcrypt_cost", Default: bcrypt.DefaultCost, Desc: "bcrypt cost factor for password hashes"},

	// Inbox housekeeping
	{Name: "notification_retention", Default: "720h", Desc: "How long read notifications are kept before cleanup (e.g., 720h for 30 days)"},

	// Audit logging settings
	{Name: "audit_log_decisions", Default: "all", Desc: "Approval verdict logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Bootstrap Government reviewer account
	{Name: "government_email", Default: "", Desc: "Email of the bootstrap Government user (created approved on startup; blank disables)"},
	{Name: "government_name", Default: "Government Administrator", Desc: "Display name for the bootstrap Government user"},
	{Name: "government_password", Default: "", Desc: "Initial password for the bootstrap Government user (only used on creation)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, VOLUNHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "VOLUNHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret: appValues.String("token_secret"),
		TokenTTL:    appValues.Duration("token_ttl", 24*time.Hour),

		BcryptCost: appValues.Int("bcrypt_cost"),

		NotificationRetention: appValues.Duration("notification_retention", 30*24*time.Hour),

		AuditLogDecisions: appValues.String("audit_log_decisions"),
		AuditLogAdmin:     appValues.String("audit_log_admin"),

		GovernmentEmail:    appValues.String("government_email"),
		GovernmentName:     appValues.String("government_name"),
		GovernmentPassword: appValues.String("government_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// VolunHub validates the MongoDB URI format and the token secret up
// front so configuration errors surface before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if len(appCfg.TokenSecret) < minTokenSecretLen {
		return fmt.Errorf("token_secret must be at least %d characters", minTokenSecretLen)
	}
	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", appCfg.TokenTTL)
	}

	if appCfg.NotificationRetention <= 0 {
		return fmt.Errorf("notification_retention must be positive, got %s", appCfg.NotificationRetention)
	}

	if appCfg.BcryptCost < bcrypt.MinCost || appCfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, appCfg.BcryptCost)
	}

	// A bootstrap Government account needs a password on first creation.
	if appCfg.GovernmentEmail != "" && appCfg.GovernmentPassword == "" {
		return fmt.Errorf("government_email is set but government_password is empty")
	}

	return nil
}
