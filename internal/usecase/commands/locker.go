package commands

import (
	"context"
	"log/slog"

	"locker-hub/internal/domain/locker"
	"locker-hub/internal/pkg/clock"
	"locker-hub/internal/pkg/config"
	"locker-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

type LockerCommands interface {
	StartMaintenance(ctx context.Context, lockerID uuid.UUID) error
	EndMaintenance(ctx context.Context, lockerID uuid.UUID) error
}

type lockerUseCaseImpl struct {
	uow    shared.UnitOfWork
	events eventEmitter
	clock  clock.Clock
}

func NewLockerUseCase(uow shared.UnitOfWork, publisher EventPublisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) LockerCommands {
	return &lockerUseCaseImpl{
		uow:    uow,
		events: newEventEmitter(publisher, cfg.Notify, logger),
		clock:  clk,
	}
}

func (uc *lockerUseCaseImpl) StartMaintenance(ctx context.Context, lockerID uuid.UUID) error {
	return uc.changeStatus(ctx, lockerID, (*locker.Locker).StartMaintenance, locker.EventMaintenanceStarted)
}

func (uc *lockerUseCaseImpl) EndMaintenance(ctx context.Context, lockerID uuid.UUID) error {
	return uc.changeStatus(ctx, lockerID, (*locker.Locker).EndMaintenance, locker.EventMaintenanceEnded)
}

func (uc *lockerUseCaseImpl) changeStatus(
	ctx context.Context,
	lockerID uuid.UUID,
	apply func(*locker.Locker) error,
	eventType locker.EventType,
) error {
	var status locker.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lk, derr := tx.Lockers().FindByIDForUpdate(ctx, lockerID)
		if derr != nil {
			return derr
		}

		from := lk.Status()
		if derr = apply(lk); derr != nil {
			return derr
		}
		if derr = tx.Lockers().ChangeStatus(ctx, lk, from); derr != nil {
			return derr
		}
		status = lk.Status()
		return nil
	})
	if err != nil {
		return translateErr(err)
	}

	uc.events.emit(ctx, locker.Event{
		Type:       eventType,
		LockerID:   lockerID,
		Status:     status,
		OccurredAt: uc.clock.Now(),
	})
	return nil
}
