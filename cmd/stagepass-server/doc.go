// Package main provides the entry point for stagepass-server.
//
// The server issues LiveKit room join tokens for the improv battle
// frontend:
//
//   - GET /token?name=<identity> returns the room URL and a signed token
//   - GET /health and GET /ready report liveness
//   - GET /metrics exposes Prometheus metrics
//
// Usage:
//
//	stagepass-server [flags]
//	stagepass-server --config /path/to/config.yaml
//
// Configuration is read from defaults, an optional YAML file and
// STAGEPASS_* environment variables, in that order.
package main
