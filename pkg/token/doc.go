// Package token provides random identifier generation utilities.
//
// Identifiers are produced from crypto/rand and Base64 RawURL encoded,
// which makes them safe to carry in headers and URLs. The HTTP layer
// uses them as request IDs; they carry no meaning beyond uniqueness.
package token
