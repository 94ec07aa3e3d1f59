// Package httpserver provides the HTTP server for stagepass.
package httpserver

import (
	"net/http"

	"github.com/improvlabs/stagepass/internal/server/httpserver/handler"
	"github.com/improvlabs/stagepass/internal/telemetry/logger"
	"github.com/improvlabs/stagepass/internal/telemetry/metric"
)

// RouterConfig holds the configuration for building the router.
type RouterConfig struct {
	Handler            *handler.Handler
	Logger             logger.Logger
	Metrics            *metric.Registry
	CORSAllowedOrigins []string
	RateLimit          int
	TrustProxyHeaders  bool
}

// NewRouter builds the full request pipeline around the API handler.
//
// The metrics endpoint bypasses rate limiting and access logging so a
// scraper cannot starve the token endpoint or flood the logs.
func NewRouter(cfg RouterConfig) http.Handler {
	api := Chain(cfg.Handler,
		Recover(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
		RateLimit(cfg.RateLimit, cfg.TrustProxyHeaders),
		AccessLog(cfg.Logger, cfg.TrustProxyHeaders),
		Metrics(cfg.Metrics),
	)

	mux := http.NewServeMux()
	mux.Handle("/", api)
	mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(),
		Recover(cfg.Logger),
	))

	return mux
}
