//go:build unit || e2e

package builder

import (
	"time"

	"locker-hub/internal/domain/verification"
	sqlc "locker-hub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VerificationCodeBuilder struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Phone     string
	CodeHash  string
	Purpose   verification.Purpose
	CreatedAt time.Time
	TTL       time.Duration
	Used      bool
}

func NewVerificationCodeBuilder() *VerificationCodeBuilder {
	return &VerificationCodeBuilder{
		ID:        uuid.New(),
		Phone:     "+819012345678",
		CodeHash:  "hashed-code",
		Purpose:   verification.PurposeLogin,
		CreatedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		TTL:       verification.DefaultTTL,
	}
}

func (v *VerificationCodeBuilder) With(mutate func(*VerificationCodeBuilder)) *VerificationCodeBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VerificationCodeBuilder) BuildDomain() *verification.Code {
	phone, err := verification.NewPhone(v.Phone)
	if err != nil {
		panic(err)
	}
	var usedAt *time.Time
	if v.Used {
		t := v.CreatedAt
		usedAt = &t
	}
	return verification.ReconstructCode(
		v.ID,
		v.UserID,
		phone,
		v.CodeHash,
		v.Purpose,
		v.CreatedAt.Add(v.TTL),
		v.Used,
		usedAt,
		v.CreatedAt,
	)
}

func (v *VerificationCodeBuilder) BuildInfra() sqlc.VerificationCodes {
	row := sqlc.VerificationCodes{
		ID:        v.ID,
		Phone:     v.Phone,
		CodeHash:  v.CodeHash,
		Purpose:   v.Purpose.String(),
		ExpiresAt: pgtype.Timestamptz{Time: v.CreatedAt.Add(v.TTL), Valid: true},
		Used:      v.Used,
		CreatedAt: pgtype.Timestamptz{Time: v.CreatedAt, Valid: true},
	}
	if v.UserID != nil {
		row.UserID = pgtype.UUID{Bytes: *v.UserID, Valid: true}
	}
	return row
}
