// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, CORS, and request body limits. AppConfig is
// where everything specific to VolunHub lives: the MongoDB connection,
// token signing, password hashing cost, and the bootstrap Government
// reviewer account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// API token configuration
	TokenSecret string        // HMAC secret for signing bearer tokens (must be strong in production)
	TokenTTL    time.Duration // Lifetime of issued tokens

	// Password hashing
	BcryptCost int // bcrypt cost factor for stored password hashes

	// Inbox housekeeping
	NotificationRetention time.Duration // how long read notifications are kept

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogDecisions string // approval verdict events
	AuditLogAdmin     string // destructive admin events

	// Bootstrap Government reviewer account.
	//
	// Every registration starts Pending, and only Government users can
	// approve NGOs, so a deployment with no Government account could
	// never approve anyone. When GovernmentEmail is set, Startup creates
	// (or keeps) an already-approved Government user with these
	// credentials.
	GovernmentEmail    string // Email of the bootstrap Government user (blank disables)
	GovernmentName     string // Display name for the bootstrap Government user
	GovernmentPassword string // Initial password (only used when the account is created)
}
