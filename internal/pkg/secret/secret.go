// Package secret hashes short-lived numeric secrets before they are stored.
package secret

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("secret hashing failed")
	ErrComparisonFailed = errors.New("secret comparison failed")
	ErrEmptySecret      = errors.New("empty secret")
)

const DefaultCost = bcrypt.DefaultCost

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptySecret
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashed), nil
}

// Matches reports whether plain hashes to hashed. Malformed hashes never match.
func (h *Hasher) Matches(hashed, plain string) bool {
	return h.Compare(hashed, plain) == nil
}

func (h *Hasher) Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmptySecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
