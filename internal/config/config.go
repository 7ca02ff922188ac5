package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"time"    // time parses the backend request timeout
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The gateway owns no database; its only
// external collaborators are the parking backend, Redis and RabbitMQ.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	BackendBaseURL string        // base URL of the external parking backend
	BackendTimeout time.Duration // per-request timeout for backend calls
	SessionSecret  string        // secret used to sign session tokens
	CookieSecure   bool          // mark the session cookie Secure (HTTPS deployments)
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),            // environment (dev/test/prod)
		Port:           must("APP_PORT"),           // port to bind the HTTP server
		BackendBaseURL: must("BACKEND_BASE_URL"),   // parking backend, e.g. http://10.24.193.86:5000
		BackendTimeout: envDur("BACKEND_TIMEOUT", 10*time.Second),
		SessionSecret:  must("SESSION_SECRET"),     // secret for signing session tokens
		CookieSecure:   envBool("COOKIE_SECURE", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
