package config

const defaultServerPort = 3000

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.request_timeout": "8s",
		"server.idle_timeout":    "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.url":             "",
		"database.tls.enabled":     true,
		"database.tls.skip_verify": true,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}

// platformEnv maps unprefixed environment variables set by hosting platforms
// to koanf keys. They take precedence over every other layer.
var platformEnv = map[string]string{
	"DATABASE_URL": "database.url",
	"PORT":         "server.port",
}
