package verification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 10 * time.Minute

var (
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidPurpose = errors.New("invalid verification purpose")
	ErrInvalidTTL     = errors.New("ttl must be positive")
	ErrEmptyHash      = errors.New("code hash is required")
	ErrAlreadyUsed    = errors.New("verification code already used")
	ErrExpired        = errors.New("verification code expired")
)

// Code is an issued one-time code. Only the hash of the secret is held.
type Code struct {
	id        uuid.UUID
	userID    *uuid.UUID
	phone     Phone
	codeHash  string
	purpose   Purpose
	expiresAt time.Time
	used      bool
	usedAt    *time.Time
	createdAt time.Time
}

func NewCode(phone Phone, purpose Purpose, userID *uuid.UUID, codeHash string, now time.Time, ttl time.Duration) (*Code, error) {
	if phone.String() == "" {
		return nil, ErrInvalidPhone
	}
	if !purpose.IsValid() {
		return nil, ErrInvalidPurpose
	}
	if codeHash == "" {
		return nil, ErrEmptyHash
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	return &Code{
		id:        uuid.New(),
		userID:    userID,
		phone:     phone,
		codeHash:  codeHash,
		purpose:   purpose,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}, nil
}

func ReconstructCode(
	id uuid.UUID,
	userID *uuid.UUID,
	phone Phone,
	codeHash string,
	purpose Purpose,
	expiresAt time.Time,
	used bool,
	usedAt *time.Time,
	createdAt time.Time,
) *Code {
	return &Code{
		id:        id,
		userID:    userID,
		phone:     phone,
		codeHash:  codeHash,
		purpose:   purpose,
		expiresAt: expiresAt,
		used:      used,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

// IsUsable is true strictly before expiresAt.
func (c *Code) IsUsable(now time.Time) bool {
	return !c.used && now.Before(c.expiresAt)
}

func (c *Code) Consume(now time.Time) error {
	if c.used {
		return ErrAlreadyUsed
	}
	if !now.Before(c.expiresAt) {
		return ErrExpired
	}
	c.used = true
	c.usedAt = &now
	return nil
}

func (c *Code) ID() uuid.UUID        { return c.id }
func (c *Code) UserID() *uuid.UUID   { return c.userID }
func (c *Code) Phone() Phone         { return c.phone }
func (c *Code) CodeHash() string     { return c.codeHash }
func (c *Code) Purpose() Purpose     { return c.purpose }
func (c *Code) ExpiresAt() time.Time { return c.expiresAt }
func (c *Code) Used() bool           { return c.used }
func (c *Code) UsedAt() *time.Time   { return c.usedAt }
func (c *Code) CreatedAt() time.Time { return c.createdAt }
