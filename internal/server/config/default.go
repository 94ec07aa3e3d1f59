// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr = "127.0.0.1:5080"

	DefaultRoom     = "improv_battle_room"
	DefaultTokenTTL = time.Hour

	DefaultRateLimit = 100

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:               DefaultHTTPAddr,
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          DefaultRateLimit,
			},
		},
		Token: TokenSection{
			Room: DefaultRoom,
			TTL:  DefaultTokenTTL,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
