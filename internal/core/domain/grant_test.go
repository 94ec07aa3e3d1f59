package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestIdentity_Validate(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		wantErr  error
	}{
		{"valid", Identity("alice"), nil},
		{"valid with spaces", Identity("Alice from Team B"), nil},
		{"valid unicode", Identity("améliе"), nil},
		{"empty", Identity(""), ErrMissingIdentity},
		{"too long", Identity(strings.Repeat("a", MaxIdentityLength+1)), ErrIdentityTooLong},
		{"invalid utf8", Identity(string([]byte{0xff, 0xfe})), ErrIdentityInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRoomGrant(t *testing.T) {
	t.Run("defaults to the fixed room", func(t *testing.T) {
		g := NewRoomGrant("", Identity("alice"))
		if g.Room != DefaultRoom {
			t.Errorf("Room = %s, want %s", g.Room, DefaultRoom)
		}
		if g.Identity != "alice" {
			t.Errorf("Identity = %s, want alice", g.Identity)
		}
	})

	t.Run("keeps configured room", func(t *testing.T) {
		g := NewRoomGrant("rehearsal_room", Identity("bob"))
		if g.Room != "rehearsal_room" {
			t.Errorf("Room = %s, want rehearsal_room", g.Room)
		}
	})
}

func TestDomainError(t *testing.T) {
	t.Run("error string includes code", func(t *testing.T) {
		if got := ErrMissingIdentity.Error(); got != "[SP-ARG-4001] Missing name" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("details are appended", func(t *testing.T) {
		err := ErrIdentityTooLong.WithDetails("300 bytes")
		if got := err.Error(); got != "[SP-ARG-4002] name too long: 300 bytes" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("errors.Is matches by code", func(t *testing.T) {
		wrapped := ErrSigningFailed.WithCause(errors.New("bad secret"))
		if !errors.Is(wrapped, ErrSigningFailed) {
			t.Error("expected errors.Is to match by code")
		}
		if errors.Is(wrapped, ErrMissingIdentity) {
			t.Error("expected different codes not to match")
		}
	})

	t.Run("unwrap exposes cause", func(t *testing.T) {
		cause := errors.New("bad secret")
		wrapped := ErrSigningFailed.WithCause(cause)
		if !errors.Is(wrapped, cause) {
			t.Error("expected cause to be reachable via errors.Is")
		}
	})

	t.Run("GetErrorCode", func(t *testing.T) {
		if code := GetErrorCode(ErrMissingIdentity); code != "SP-ARG-4001" {
			t.Errorf("GetErrorCode() = %s", code)
		}
		if code := GetErrorCode(errors.New("plain")); code != "" {
			t.Errorf("GetErrorCode(plain) = %s, want empty", code)
		}
	})
}
