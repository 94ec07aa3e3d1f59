// Package handler provides HTTP request handlers for stagepass.
package handler

// TokenResponse is the response body for GET /token.
//
// The field names are part of the public contract with the frontend.
type TokenResponse struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

// ErrorResponse is the error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response body for GET /health and GET /ready.
type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Version string `json:"version,omitempty"`
}
