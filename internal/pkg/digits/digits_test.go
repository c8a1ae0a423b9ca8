//go:build unit

package digits_test

import (
	"testing"

	"locker-hub/internal/pkg/digits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		code, err := digits.Generate(6)
		require.NoError(t, err)
		assert.True(t, digits.IsNumeric(code, 6), "unexpected code %q", code)
		seen[code] = struct{}{}
	}
	// 200 draws out of 10^6 values; a handful of duplicates would already be suspicious
	assert.Greater(t, len(seen), 190)
}

func TestGenerateInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1, 19} {
		_, err := digits.Generate(n)
		assert.ErrorIs(t, err, digits.ErrInvalidLength)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, digits.IsNumeric("000123", 6))
	assert.False(t, digits.IsNumeric("12345", 6))
	assert.False(t, digits.IsNumeric("12a456", 6))
	assert.False(t, digits.IsNumeric("", 6))
}
