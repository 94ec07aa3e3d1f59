// Package token provides random identifier generation utilities.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

// DefaultLength is the default identifier length in bytes.
const DefaultLength = 16

// Generate generates a cryptographically secure random identifier.
//
// The returned identifier is Base64 RawURL encoded for safe transmission
// in URLs and headers.
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength generates an identifier with the specified byte length.
func GenerateWithLength(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
