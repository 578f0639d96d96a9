// Package config provides configuration loading and validation for the service.
// Configuration is loaded with koanf using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> APP_ env vars -> platform env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
//
// RequestTimeout bounds handler work and must stay below WriteTimeout so the
// 504 response can still be written before the connection deadline.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DatabaseConfig holds the Postgres connection settings. Pool sizing is left
// at the driver defaults.
type DatabaseConfig struct {
	URL string    `koanf:"url"`
	TLS TLSConfig `koanf:"tls"`
}

// TLSConfig controls transport encryption for database connections.
//
// With Enabled set, every connection is encrypted regardless of the sslmode
// in the URL. SkipVerify accepts any server certificate; hosted Postgres
// offerings on private networks commonly present certificates that do not
// chain to a public root.
type TLSConfig struct {
	Enabled    bool `koanf:"enabled"`
	SkipVerify bool `koanf:"skip_verify"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
