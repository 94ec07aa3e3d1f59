// Package metric provides Prometheus metrics for stagepass.
//
// It exposes metrics in Prometheus format for monitoring token
// issuance rates, request rates and latencies.
package metric
