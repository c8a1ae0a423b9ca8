package repository

import (
	"context"
	"log/slog"
	"time"

	"locker-hub/internal/domain/verification"
	"locker-hub/internal/infra"
	"locker-hub/internal/infra/repository/converter"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VerificationCodeWriteQueries interface {
	CreateVerificationCode(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVerificationCodeParams) (uuid.UUID, error)
	ListUsableVerificationCodesForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsableVerificationCodesForUpdateParams) ([]sqlc.VerificationCodes, error)
	MarkVerificationCodeUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkVerificationCodeUsedParams) (int64, error)
	DeleteExpiredVerificationCodes(ctx context.Context, db sqlc.DBTX, before pgtype.Timestamptz) (int64, error)
}

type VerificationCodeRepository struct {
	queries VerificationCodeWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewVerificationCodeRepository(queries VerificationCodeWriteQueries, db sqlc.DBTX, logger *slog.Logger) *VerificationCodeRepository {
	return &VerificationCodeRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, code *verification.Code) error {
	if _, err := r.queries.CreateVerificationCode(ctx, r.db, converter.VerificationCodeToCreateParams(code)); err != nil {
		return infra.WrapPgErr(r.logger, "failed to store verification code", err)
	}
	return nil
}

// FindUsableForUpdate locks every unused, unexpired code for phone+purpose, newest first.
func (r *VerificationCodeRepository) FindUsableForUpdate(
	ctx context.Context,
	phone verification.Phone,
	purpose verification.Purpose,
	now time.Time,
) ([]*verification.Code, error) {
	rows, err := r.queries.ListUsableVerificationCodesForUpdate(ctx, r.db, sqlc.ListUsableVerificationCodesForUpdateParams{
		Phone:   phone.String(),
		Purpose: purpose.String(),
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to load verification codes", err)
	}

	codes := make([]*verification.Code, 0, len(rows))
	for _, row := range rows {
		code, err := converter.VerificationCodeToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid verification code row", err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, code *verification.Code) error {
	affected, err := r.queries.MarkVerificationCodeUsed(ctx, r.db, sqlc.MarkVerificationCodeUsedParams{
		ID:     code.ID(),
		UsedAt: pgconv.TimePtrToPgtype(code.UsedAt()),
	})
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to mark verification code used", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "verification code already used", nil)
	}
	return nil
}

func (r *VerificationCodeRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredVerificationCodes(ctx, r.db, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to purge verification codes", err)
	}
	return n, nil
}
