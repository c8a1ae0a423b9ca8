package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"locker-hub/internal/domain/verification"
	"locker-hub/internal/infra/metrics"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/pkg/digits"
	"locker-hub/internal/pkg/errs"
	"locker-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestOTPRequest struct {
	Phone   string
	Purpose string
	UserID  *uuid.UUID
}

type RequestOTPResult struct {
	Sent      bool
	ExpiresAt *time.Time
}

type VerifyOTPRequest struct {
	Phone   string
	Code    string
	Purpose string
}

type VerificationCommands interface {
	RequestOTP(ctx context.Context, req RequestOTPRequest) (*RequestOTPResult, error)
	// VerifyOTP reports only whether the code was accepted. Wrong, expired
	// and already used codes are indistinguishable to the caller.
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type verificationUseCaseImpl struct {
	uow       shared.UnitOfWork
	hasher    SecretHasher
	sender    SMSSender
	throttle  OTPThrottle
	clock     clock.Clock
	ttl       time.Duration
	retention time.Duration
	region    string
	logger    *slog.Logger
}

func NewVerificationUseCase(
	uow shared.UnitOfWork,
	hasher SecretHasher,
	sender SMSSender,
	throttle OTPThrottle,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) VerificationCommands {
	ttl := cfg.OTP.TTL
	if ttl <= 0 {
		ttl = verification.DefaultTTL
	}
	return &verificationUseCaseImpl{
		uow:       uow,
		hasher:    hasher,
		sender:    sender,
		throttle:  throttle,
		clock:     clk,
		ttl:       ttl,
		retention: cfg.OTP.Retention,
		region:    cfg.OTP.DefaultRegion,
		logger:    logger,
	}
}

func (uc *verificationUseCaseImpl) RequestOTP(ctx context.Context, req RequestOTPRequest) (result *RequestOTPResult, err error) {
	phone, err := verification.ParsePhone(req.Phone, uc.region)
	if err != nil {
		return nil, translateErr(err)
	}
	purpose, err := verification.ParsePurpose(req.Purpose)
	if err != nil {
		return nil, translateErr(err)
	}

	allowed, err := uc.throttle.Allow(ctx, phone, purpose)
	if err != nil {
		uc.logger.Warn("otp throttle unavailable, allowing request", "error", err.Error())
		allowed = true
	} else if allowed {
		// the cooldown only counts codes that actually went out
		defer func() {
			if result == nil || !result.Sent {
				uc.releaseThrottle(ctx, phone, purpose)
			}
		}()
	}
	if !allowed {
		metrics.OTPRequestsTotal.WithLabelValues(purpose.String(), "throttled").Inc()
		return &RequestOTPResult{Sent: false}, nil
	}

	plain, err := digits.Generate(verification.CodeLength)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate verification code")
	}
	hashed, err := uc.hasher.Hash(plain)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash verification code")
	}

	code, err := verification.NewCode(phone, purpose, req.UserID, hashed, uc.clock.Now(), uc.ttl)
	if err != nil {
		return nil, translateErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.VerificationCodes().Create(ctx, code)
	})
	if err != nil {
		metrics.OTPRequestsTotal.WithLabelValues(purpose.String(), "error").Inc()
		return nil, translateErr(err)
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", plain, int(uc.ttl.Minutes()))
	if err := uc.sender.Send(ctx, phone, message); err != nil {
		uc.logger.Error("failed to send verification code",
			"purpose", purpose.String(),
			"error", err.Error())
		metrics.OTPRequestsTotal.WithLabelValues(purpose.String(), "error").Inc()
		return &RequestOTPResult{Sent: false}, nil
	}

	metrics.OTPRequestsTotal.WithLabelValues(purpose.String(), "sent").Inc()
	expiresAt := code.ExpiresAt()
	return &RequestOTPResult{Sent: true, ExpiresAt: &expiresAt}, nil
}

func (uc *verificationUseCaseImpl) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (bool, error) {
	phone, err := verification.ParsePhone(req.Phone, uc.region)
	if err != nil {
		return false, nil
	}
	purpose, err := verification.ParsePurpose(req.Purpose)
	if err != nil {
		return false, nil
	}
	if !verification.IsWellFormedCode(req.Code) {
		uc.observeVerify(purpose, false)
		return false, nil
	}

	var valid bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		valid = false
		now := uc.clock.Now()

		candidates, derr := tx.VerificationCodes().FindUsableForUpdate(ctx, phone, purpose, now)
		if derr != nil {
			return derr
		}

		for _, c := range candidates {
			if !c.IsUsable(now) || !uc.hasher.Matches(c.CodeHash(), req.Code) {
				continue
			}
			if derr = c.Consume(now); derr != nil {
				return derr
			}
			if derr = tx.VerificationCodes().MarkUsed(ctx, c); derr != nil {
				return derr
			}
			valid = true
			return nil
		}
		return nil
	})
	if err != nil {
		// a concurrent verify consumed the code first
		if errs.Is(err, errs.ErrConflict) {
			uc.observeVerify(purpose, false)
			return false, nil
		}
		return false, translateErr(err)
	}

	uc.observeVerify(purpose, valid)
	return valid, nil
}

// PurgeExpired deletes codes that expired more than the retention window ago.
func (uc *verificationUseCaseImpl) PurgeExpired(ctx context.Context) (int64, error) {
	before := uc.clock.Now().Add(-uc.retention)

	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.VerificationCodes().DeleteExpiredBefore(ctx, before)
		if derr != nil {
			return derr
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, translateErr(err)
	}

	metrics.OTPPurgedTotal.Add(float64(deleted))
	return deleted, nil
}

func (uc *verificationUseCaseImpl) releaseThrottle(ctx context.Context, phone verification.Phone, purpose verification.Purpose) {
	if err := uc.throttle.Release(context.WithoutCancel(ctx), phone, purpose); err != nil {
		uc.logger.Warn("failed to release otp throttle slot",
			"purpose", purpose.String(),
			"error", err.Error())
	}
}

func (uc *verificationUseCaseImpl) observeVerify(purpose verification.Purpose, valid bool) {
	metrics.OTPVerificationsTotal.WithLabelValues(purpose.String(), strconv.FormatBool(valid)).Inc()
}
