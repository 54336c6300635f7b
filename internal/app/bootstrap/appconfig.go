// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging, CORS); everything specific
// to projecthub lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in the pool
	MongoMinPoolSize uint64 // Minimum connections kept open

	// Session cookie issued by the identity service. These must match the
	// issuer's settings or no request will carry a usable session.
	SessionKey    string        // Secret key the cookies are signed with
	SessionName   string        // Cookie name (default: projecthub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime accepted on decode

	// Where admin audit events go: all, db, log or off (see system/auditlog)
	AuditLog string

	// Per-call store deadlines (see system/timeouts)
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
