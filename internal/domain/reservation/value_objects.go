package reservation

import (
	"errors"

	"locker-hub/internal/pkg/digits"
)

const AccessCodeLength = 6

var ErrInvalidAccessCode = errors.New("access code must be 6 digits")

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int64) Money {
	return Money{cents: m.cents * n}
}

type AccessCode struct {
	value string
}

func NewAccessCode(value string) (AccessCode, error) {
	if !digits.IsNumeric(value, AccessCodeLength) {
		return AccessCode{}, ErrInvalidAccessCode
	}
	return AccessCode{value: value}, nil
}

func (c AccessCode) String() string {
	return c.value
}

func (c AccessCode) IsZero() bool {
	return c.value == ""
}
