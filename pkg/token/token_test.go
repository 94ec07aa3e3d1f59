// Package token provides random identifier generation utilities.
package token

import (
	"encoding/base64"
	"testing"
)

func TestGenerate(t *testing.T) {
	id, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if id == "" {
		t.Error("Generate() returned empty identifier")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		t.Errorf("Generate() returned invalid base64: %v", err)
	}

	if len(decoded) != DefaultLength {
		t.Errorf("Generate() decoded length = %d, want %d", len(decoded), DefaultLength)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if seen[id] {
			t.Errorf("Generate() produced duplicate identifier: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateWithLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"8 bytes", 8},
		{"16 bytes", 16},
		{"32 bytes", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateWithLength(tt.length)
			if err != nil {
				t.Fatalf("GenerateWithLength(%d) error = %v", tt.length, err)
			}

			decoded, err := base64.RawURLEncoding.DecodeString(id)
			if err != nil {
				t.Fatalf("invalid base64: %v", err)
			}

			if len(decoded) != tt.length {
				t.Errorf("decoded length = %d, want %d", len(decoded), tt.length)
			}
		})
	}
}
