// Package credential turns plaintext passwords into storage-safe hashes.
// Nothing in this package logs or returns the plaintext.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 14

// ErrEmptyPassword is returned when asked to hash an empty string.
var ErrEmptyPassword = errors.New("empty password")

// Hasher produces a salted one-way hash of a password.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, which must lie within
// bcrypt.MinCost..bcrypt.MaxCost.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("credential: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Hash returns the bcrypt encoding of plaintext. bcrypt generates the salt.
// Passwords longer than 72 bytes are rejected by bcrypt and surface as an error.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("credential.BcryptHasher.Hash: %w", err)
	}
	return string(b), nil
}

// Compare reports whether plaintext matches hash. It returns nil on a match.
func Compare(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
