// Package handler provides HTTP request handlers for stagepass.
//
// This package contains handlers for all HTTP endpoints:
//
//   - token.go: Join-token issuance
//   - health.go: Health and readiness checks
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Format and return response
//   - Handle errors with appropriate HTTP status codes
//
// The token endpoint keeps the wire format the frontend already
// depends on: a flat JSON object, no envelope.
package handler
