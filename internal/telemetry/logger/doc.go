// Package logger provides structured logging for stagepass.
//
// It wraps the standard library log/slog to provide structured JSON
// logging with automatic sensitive data redaction. Room credentials
// and signed join tokens must never reach the log output in full.
//
// Features:
//
//   - JSON structured logging (default)
//   - Automatic redaction of secret-bearing fields and JWT values
//   - Context-aware logging with request ID propagation
//   - Dynamic log level adjustment
package logger
