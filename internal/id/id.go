// Package id generates the identifiers handed out by the server.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes for generated IDs.
const (
	PrefixSign    = "sign"
	PrefixRequest = "req"
)

// requestAlphabet avoids characters that need quoting in log lines.
const requestAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const requestIDLength = 12

// Generate creates a prefixed NanoID such as "sign-V1StGXR8_Z5jdHi6B-myT".
// The random part is 21 URL-safe characters.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// NewSignID returns an ID for a drawn sign.
func NewSignID() (string, error) {
	return Generate(PrefixSign)
}

// NewRequestID returns a short lowercase ID for correlating request logs.
func NewRequestID() (string, error) {
	id, err := gonanoid.Generate(requestAlphabet, requestIDLength)
	if err != nil {
		return "", fmt.Errorf("generate request id: %w", err)
	}
	return PrefixRequest + "-" + id, nil
}
