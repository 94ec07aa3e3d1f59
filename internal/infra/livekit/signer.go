// Package livekit adapts the LiveKit token library to the Signer port.
package livekit

import (
	"context"
	"errors"
	"time"

	"github.com/livekit/protocol/auth"

	"github.com/improvlabs/stagepass/internal/core/domain"
)

// ErrMissingCredentials is returned when the signer is constructed
// without an API key or secret.
var ErrMissingCredentials = errors.New("livekit: api key and secret are required")

// Signer signs room grants using a LiveKit API key pair.
type Signer struct {
	apiKey    string
	apiSecret string
}

// NewSigner creates a Signer from the configured key pair.
func NewSigner(apiKey, apiSecret string) (*Signer, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, ErrMissingCredentials
	}
	return &Signer{
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}, nil
}

// Sign implements service.Signer.
func (s *Signer) Sign(_ context.Context, grant domain.RoomGrant, validFor time.Duration) (string, error) {
	at := auth.NewAccessToken(s.apiKey, s.apiSecret)

	videoGrant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     grant.Room,
	}

	at.SetVideoGrant(videoGrant).
		SetIdentity(grant.Identity.String()).
		SetValidFor(validFor)

	return at.ToJWT()
}
