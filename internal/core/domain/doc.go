// Package domain defines the core domain models for stagepass.
//
// The domain is intentionally small: a caller-supplied identity and the
// room grant minted for it. Everything is transient; nothing outlives a
// single request/response cycle.
package domain
