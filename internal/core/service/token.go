// Package service provides domain services for stagepass.
package service

import (
	"context"
	"time"

	"github.com/improvlabs/stagepass/internal/core/domain"
)

// Signer is the port to the external signing collaborator. It owns all
// cryptographic token construction; the service only supplies the grant
// and validity window.
type Signer interface {
	// Sign produces a signed join token for the given grant.
	Sign(ctx context.Context, grant domain.RoomGrant, validFor time.Duration) (string, error)
}

// TokenService translates join requests into signed room credentials.
type TokenService struct {
	signer   Signer
	url      string
	room     string
	validFor time.Duration
}

// TokenServiceConfig holds configuration for TokenService.
type TokenServiceConfig struct {
	// URL is the connection endpoint returned alongside every token.
	URL string

	// Room is the fixed room every token is scoped to
	// (default: domain.DefaultRoom).
	Room string

	// ValidFor is the token validity window (default: 1h).
	ValidFor time.Duration
}

// DefaultTokenServiceConfig returns default configuration.
func DefaultTokenServiceConfig() *TokenServiceConfig {
	return &TokenServiceConfig{
		Room:     domain.DefaultRoom,
		ValidFor: time.Hour,
	}
}

// NewTokenService creates a new TokenService with the given signer and config.
func NewTokenService(signer Signer, config *TokenServiceConfig) *TokenService {
	if config == nil {
		config = DefaultTokenServiceConfig()
	}
	room := config.Room
	if room == "" {
		room = domain.DefaultRoom
	}
	validFor := config.ValidFor
	if validFor <= 0 {
		validFor = time.Hour
	}

	return &TokenService{
		signer:   signer,
		url:      config.URL,
		room:     room,
		validFor: validFor,
	}
}

// IssueTokenRequest contains parameters for token issuance.
type IssueTokenRequest struct {
	// Identity is the caller-supplied participant name.
	Identity domain.Identity
}

// IssueTokenResponse contains the issued credential.
type IssueTokenResponse struct {
	// URL is the connection endpoint for the room service.
	URL string

	// Token is the signed join token.
	Token string

	// Grant is the permission set encoded into the token.
	Grant domain.RoomGrant
}

// Issue validates the identity and asks the signing collaborator for a
// join token scoped to the fixed room.
func (s *TokenService) Issue(ctx context.Context, req *IssueTokenRequest) (*IssueTokenResponse, error) {
	if err := req.Identity.Validate(); err != nil {
		return nil, err
	}

	grant := domain.NewRoomGrant(s.room, req.Identity)

	token, err := s.signer.Sign(ctx, grant, s.validFor)
	if err != nil {
		return nil, domain.ErrSigningFailed.WithCause(err)
	}

	return &IssueTokenResponse{
		URL:   s.url,
		Token: token,
		Grant: grant,
	}, nil
}
