package converter

import (
	"fmt"

	"locker-hub/internal/domain/verification"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/pgconv"
)

func VerificationCodeToCreateParams(code *verification.Code) sqlc.CreateVerificationCodeParams {
	return sqlc.CreateVerificationCodeParams{
		ID:        code.ID(),
		UserID:    pgconv.UUIDPtrToPgtype(code.UserID()),
		Phone:     code.Phone().String(),
		CodeHash:  code.CodeHash(),
		Purpose:   code.Purpose().String(),
		ExpiresAt: pgconv.TimeToPgtype(code.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(code.CreatedAt()),
	}
}

func VerificationCodeToDomain(row sqlc.VerificationCodes) (*verification.Code, error) {
	phone, err := verification.NewPhone(row.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: verification code %s: %w", ErrCorruptRow, row.ID, err)
	}
	purpose, err := verification.ParsePurpose(row.Purpose)
	if err != nil {
		return nil, fmt.Errorf("%w: verification code %s: %w", ErrCorruptRow, row.ID, err)
	}

	return verification.ReconstructCode(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		phone,
		row.CodeHash,
		purpose,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		row.Used,
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
