package metric

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}

	// Registering the same registry twice would panic; a fresh registry
	// per call must not share collectors.
	r2 := NewRegistry()
	if r2 == nil {
		t.Fatal("second NewRegistry returned nil")
	}
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()

	r.TokensIssued.Inc()
	r.TokensIssued.Inc()
	r.TokenIssueFailures.Inc()
	r.RequestsTotal.WithLabelValues("GET", "/token", "200").Inc()
	r.RequestDuration.WithLabelValues("/token").Observe(0.002)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "stagepass_tokens_issued_total 2") {
		t.Errorf("expected tokens issued counter in output:\n%s", body)
	}
	if !strings.Contains(body, "stagepass_token_issue_failures_total 1") {
		t.Errorf("expected failure counter in output:\n%s", body)
	}
	if !strings.Contains(body, `stagepass_http_requests_total{method="GET",path="/token",status="200"} 1`) {
		t.Errorf("expected request counter in output:\n%s", body)
	}
}
