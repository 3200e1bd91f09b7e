// Package config manages application configuration for the Dream Jobs API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: session token signing and cookie settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 5000)
//	DB_HOST              - SurrealDB host
//	DB_PORT              - SurrealDB port
//	DB_USER              - Database username
//	DB_PASSWORD          - Database password
//	DB_NAMESPACE         - Database namespace
//	DB_DATABASE          - Database name
//	ACCESS_TOKEN_SECRET  - Session token signing secret (required)
//	JWT_EXPIRATION_MINS  - Token expiration in minutes (default: 60)
//	SESSION_COOKIE_NAME  - Session cookie name (default: token)
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
