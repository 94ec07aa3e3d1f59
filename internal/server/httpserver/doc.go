// Package httpserver provides the HTTP server for stagepass.
//
// This package implements the public API using stdlib net/http:
//
//   - Token endpoint: /token
//   - Health endpoints: /health, /ready
//   - Metrics endpoint: /metrics
//
// Features:
//
//   - Middleware chain: Recover, CORS, RequestID, RateLimit, Metrics
//   - Graceful shutdown
//   - Prometheus metrics integration
package httpserver
