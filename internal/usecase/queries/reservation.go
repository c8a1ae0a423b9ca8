package queries

import (
	"context"

	"locker-hub/internal/domain/reservation"
	"locker-hub/internal/domain/user"
	"locker-hub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationAccess = errs.New("reservation belongs to another user")

type ReservationFilter struct {
	UserID uuid.UUID
	Status *reservation.Status
	Limit  int32
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	FindHistoryByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*HistoryView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status string, limit int) ([]*ReservationView, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*HistoryView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID hides other users' reservations unless the actor is an admin.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != user.RoleAdmin && view.UserID != actorID {
		return nil, errs.Mark(ErrReservationAccess, errs.ErrForbidden)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status string, limit int) ([]*ReservationView, error) {
	filter := ReservationFilter{UserID: userID, Limit: clampLimit(limit)}
	if status != "" {
		s, err := reservation.ParseStatus(status)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		filter.Status = &s
	}
	return q.store.FindByUser(ctx, filter)
}

func (q *reservationQueriesImpl) History(ctx context.Context, userID uuid.UUID, limit int) ([]*HistoryView, error) {
	return q.store.FindHistoryByUser(ctx, userID, clampLimit(limit))
}
