// Package domain defines the core domain models for stagepass.
package domain

import (
	"unicode/utf8"
)

// DefaultRoom is the room every issued token is scoped to.
//
// The service mints tokens for exactly one room; the caller cannot
// choose another.
const DefaultRoom = "improv_battle_room"

// MaxIdentityLength is the maximum accepted identity length in bytes.
const MaxIdentityLength = 256

// Identity is the caller-supplied name used as the subject of an
// issued token.
type Identity string

// Validate checks that the identity can be used as a token subject.
func (i Identity) Validate() error {
	if i == "" {
		return ErrMissingIdentity
	}
	if len(i) > MaxIdentityLength {
		return ErrIdentityTooLong
	}
	if !utf8.ValidString(string(i)) {
		return ErrIdentityInvalid
	}
	return nil
}

// String returns the identity as a plain string.
func (i Identity) String() string {
	return string(i)
}

// RoomGrant is the permission set encoded into a signed token: the
// right to join one specific room under one identity.
type RoomGrant struct {
	// Room is the room the token grants access to.
	Room string

	// Identity is the participant identity the token is bound to.
	Identity Identity
}

// NewRoomGrant builds a grant for the fixed room and the given identity.
// The identity must already be validated.
func NewRoomGrant(room string, identity Identity) RoomGrant {
	if room == "" {
		room = DefaultRoom
	}
	return RoomGrant{
		Room:     room,
		Identity: identity,
	}
}
