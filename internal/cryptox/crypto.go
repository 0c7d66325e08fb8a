// Package cryptox contains the password hashing primitives used by the
// authentication flow. Digests are bcrypt strings: the algorithm version,
// cost and salt are all encoded inside the digest, so verification needs no
// external parameters.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted one-way digest of password with the given
// bcrypt cost (work factor). A cost outside the valid bcrypt range falls back
// to bcrypt.DefaultCost. Each call generates a fresh random salt, so hashing
// the same password twice yields different digests.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing error: %w", err)
	}
	return string(b), nil
}

// CheckPassword reports whether password matches the stored digest.
// The comparison is constant-time inside bcrypt. A malformed digest is
// treated as a failed verification, never an error.
func CheckPassword(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
