// Package config defines the server configuration structure.
package config

import (
	"errors"
	"strings"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyLiveKit(&cfg.LiveKit); err != nil {
		return err
	}
	return verifyToken(&cfg.Token)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if cfg.HTTP.RateLimit < 0 {
		return errors.New("server.http.rate_limit must not be negative")
	}
	return nil
}

func verifyLiveKit(cfg *LiveKitSection) error {
	if cfg.URL == "" {
		return errors.New("livekit.url is required")
	}
	if !strings.HasPrefix(cfg.URL, "ws://") && !strings.HasPrefix(cfg.URL, "wss://") &&
		!strings.HasPrefix(cfg.URL, "http://") && !strings.HasPrefix(cfg.URL, "https://") {
		return errors.New("livekit.url must be a ws(s):// or http(s):// URL")
	}
	if cfg.Key == "" {
		return errors.New("livekit.key is required")
	}
	if cfg.Secret == "" {
		return errors.New("livekit.secret is required")
	}
	return nil
}

func verifyToken(cfg *TokenSection) error {
	if cfg.Room == "" {
		return errors.New("token.room is required")
	}
	if cfg.TTL <= 0 {
		return errors.New("token.ttl must be positive")
	}
	return nil
}
