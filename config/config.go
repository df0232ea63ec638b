package config

import (
	"os"
	"strings"
	"time"
)

// Config is the station's environment-driven configuration.
type Config struct {
	Port           string
	BackendURL     string // base of the remote hotel API, e.g. http://host/api
	BackendWSURL   string // push channel, e.g. ws://host/ws
	BackendTimeout time.Duration

	// Permissions is the comma-separated capability list granted to this
	// station, e.g. "guests:view,guests:edit".
	Permissions string

	// RefreshInterval re-runs the full load periodically on top of the
	// push-driven invalidation. Zero disables it.
	RefreshInterval time.Duration
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

func Load() Config {
	return Config{
		Port:           envOrDefault("PORT", "8090"),
		BackendURL:     envOrDefault("BACKEND_URL", "http://localhost:8080/api"),
		BackendWSURL:   envOrDefault("BACKEND_WS_URL", "ws://localhost:8080/ws"),
		BackendTimeout: envDuration("BACKEND_TIMEOUT", 10*time.Second),
		Permissions: envOrDefault("STATION_PERMISSIONS",
			"guests:view,guests:edit,guests:export,rooms:view,dashboard:view"),
		RefreshInterval: envDuration("REFRESH_INTERVAL", 0),
	}
}
