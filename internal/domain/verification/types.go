package verification

import "strings"

type Purpose string

const (
	PurposeSignup      Purpose = "SIGNUP"
	PurposeLogin       Purpose = "LOGIN"
	PurposePhoneUpdate Purpose = "PHONE_UPDATE"
)

func (p Purpose) String() string {
	return string(p)
}

func (p Purpose) IsValid() bool {
	switch p {
	case PurposeSignup, PurposeLogin, PurposePhoneUpdate:
		return true
	default:
		return false
	}
}

func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPurpose
	}
	return p, nil
}
