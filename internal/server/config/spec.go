// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for stagepass-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	LiveKit LiveKitSection `koanf:"livekit"`
	Token   TokenSection   `koanf:"token"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	// Addr is the listen address.
	Addr string `koanf:"addr"`

	// CORSAllowedOrigins is the list of allowed CORS origins.
	// Empty means allow none; "*" allows all (the browser frontend is
	// usually served from a different origin).
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimit is the per-IP request rate limit (requests/second).
	// 0 disables rate limiting.
	RateLimit int `koanf:"rate_limit"`

	// TrustProxyHeaders controls whether X-Forwarded-For and
	// X-Real-IP are believed when resolving the client IP. Enable
	// only when a trusted reverse proxy sits in front of the server.
	TrustProxyHeaders bool `koanf:"trust_proxy_headers"`
}

// LiveKitSection configures the connection to the room service.
type LiveKitSection struct {
	// URL is the connection endpoint returned to clients.
	URL string `koanf:"url"`

	// Key is the LiveKit API key.
	Key string `koanf:"key"`

	// Secret is the LiveKit API secret used by the signing library.
	Secret string `koanf:"secret"`
}

// TokenSection configures issued tokens.
type TokenSection struct {
	// Room is the fixed room every token is scoped to.
	Room string `koanf:"room"`

	// TTL is the token validity window.
	TTL time.Duration `koanf:"ttl"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
