// Package handler provides HTTP request handlers for stagepass.
package handler

import (
	"net/http"

	"github.com/improvlabs/stagepass/internal/core/domain"
	"github.com/improvlabs/stagepass/internal/core/service"
	"github.com/improvlabs/stagepass/internal/telemetry/logger"
)

// handleToken handles GET /token.
//
// The caller-supplied name is trusted as-is; there is no caller
// authentication on this endpoint. Anyone who can reach the service
// can obtain a join token for the room.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	resp, err := h.tokenSvc.Issue(r.Context(), &service.IssueTokenRequest{
		Identity: domain.Identity(name),
	})
	if err != nil {
		h.handleTokenError(w, r, err)
		return
	}

	h.metrics.TokensIssued.Inc()
	logger.L(r.Context()).Info("token issued",
		"identity", name,
		"room", resp.Grant.Room,
	)

	h.writeJSON(w, http.StatusOK, TokenResponse{
		URL:   resp.URL,
		Token: resp.Token,
	})
}

// handleTokenError maps issuance errors onto the wire contract.
func (h *Handler) handleTokenError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsDomainError(err, domain.ErrMissingIdentity.Code):
		// The exact body the frontend checks for.
		h.writeError(w, http.StatusBadRequest, "Missing name")
	case domain.IsDomainError(err, domain.ErrIdentityTooLong.Code),
		domain.IsDomainError(err, domain.ErrIdentityInvalid.Code):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		// Signing collaborator failures are not recoverable here,
		// typically a misconfigured secret.
		h.metrics.TokenIssueFailures.Inc()
		logger.L(r.Context()).Error("token issuance failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "token generation failed")
	}
}
