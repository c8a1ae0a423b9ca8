// Package digits generates uniformly distributed numeric codes.
package digits

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

var ErrInvalidLength = errors.New("code length must be between 1 and 18")

// Generate returns n decimal digits drawn from crypto/rand. Leading zeros are kept.
func Generate(n int) (string, error) {
	if n < 1 || n > 18 {
		return "", ErrInvalidLength
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	s := v.String()
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s, nil
}

func IsNumeric(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
