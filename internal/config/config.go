// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultCORSOrigins is the fixed allow-list used when CORS_ALLOWED_ORIGINS
// is not set. It covers the local development and deployment origins of the
// product finder frontend.
var DefaultCORSOrigins = []string{
	"http://localhost",
	"http://localhost:80",
	"http://localhost:3000",
	"http://frontend",
	"http://frontend:80",
}

// Config holds configuration knobs for the HTTP server and storage.
type Config struct {
	HTTPAddr           string
	SpannerDatabase    string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load collects configuration from the environment with defaults.
// If envFile is non-empty and exists, it is loaded first; a missing file is
// not an error so the service can run on environment variables alone.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		SpannerDatabase:    getenv("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db"),
		CORSAllowedOrigins: listenv("CORS_ALLOWED_ORIGINS", DefaultCORSOrigins),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 15),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

func listenv(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
