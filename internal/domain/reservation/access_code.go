package reservation

import "locker-hub/internal/pkg/digits"

type AccessCodeIssuer interface {
	Issue() (AccessCode, error)
}

// RandomAccessCodeIssuer draws codes from crypto/rand so that codes handed out
// to concurrent reservations cannot be derived from one another.
type RandomAccessCodeIssuer struct{}

func NewRandomAccessCodeIssuer() *RandomAccessCodeIssuer {
	return &RandomAccessCodeIssuer{}
}

func (i *RandomAccessCodeIssuer) Issue() (AccessCode, error) {
	value, err := digits.Generate(AccessCodeLength)
	if err != nil {
		return AccessCode{}, err
	}
	return NewAccessCode(value)
}
