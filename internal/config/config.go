package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zhouzirui/kontak/internal/session"
)

// Config aggregates every setting the service reads.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	sess, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Session: sess}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// loadServerConfig parses the listen address from PORT.
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// SessionConfig describes session cookie naming and idle expiry.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

// loadSessionConfig parses SESSION_COOKIE and SESSION_TTL_MINUTES.
func loadSessionConfig() (SessionConfig, error) {
	name := strings.TrimSpace(os.Getenv("SESSION_COOKIE"))
	if name == "" {
		name = "kontak_session"
	}

	ttl := session.DefaultTTL
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return SessionConfig{}, fmt.Errorf("invalid SESSION_TTL_MINUTES value: %q", raw)
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	return SessionConfig{CookieName: name, TTL: ttl}, nil
}
