// Package livekit adapts the LiveKit token library to the service's
// Signer port.
//
// The library exclusively owns the cryptographic token construction;
// this package only translates a room grant into the library's access
// token builder.
package livekit
