package verification

import (
	"strings"
	"unicode"

	"locker-hub/internal/pkg/digits"

	"github.com/nyaruka/phonenumbers"
)

const (
	CodeLength = 6

	// DefaultRegion applies to numbers written without a country code.
	DefaultRegion = "JP"
)

// Phone is a number in E.164 form, so one subscriber always maps to one key.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	return ParsePhone(raw, DefaultRegion)
}

// ParsePhone accepts international or national notation; region resolves the latter.
func ParsePhone(raw, region string) (Phone, error) {
	s := strings.TrimSpace(raw)
	// letters would be read as vanity digits
	if s == "" || strings.ContainsFunc(s, unicode.IsLetter) {
		return Phone{}, ErrInvalidPhone
	}

	num, err := phonenumbers.Parse(s, strings.ToUpper(region))
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return Phone{}, ErrInvalidPhone
	}

	return Phone{value: phonenumbers.Format(num, phonenumbers.E164)}, nil
}

func (p Phone) String() string {
	return p.value
}

// IsWellFormedCode rejects input that could never match an issued code.
func IsWellFormedCode(code string) bool {
	return digits.IsNumeric(code, CodeLength)
}
