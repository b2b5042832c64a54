// Package id generates and validates canonical record identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Record identifiers are 24-character lowercase hexadecimal strings, the
// canonical document-store format. Validation happens before any store
// access, so a malformed id is rejected without touching the database.
const (
	alphabet = "0123456789abcdef"
	length   = 24
)

// Generate creates a new record identifier.
//
// Returns an error if the system has insufficient entropy for secure random
// generation.
func Generate() (string, error) {
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when failure should crash the program (e.g. in tests).
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// IsValid reports whether s is in canonical identifier format.
func IsValid(s string) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
