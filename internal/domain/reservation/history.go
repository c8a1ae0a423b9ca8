package reservation

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is the immutable summary written when a reservation completes.
type HistoryRecord struct {
	reservationID uuid.UUID
	userID        uuid.UUID
	lockerID      uuid.UUID
	start         time.Time
	end           time.Time
	totalHours    int64
	totalCost     Money
}

func ReconstructHistoryRecord(
	reservationID, userID, lockerID uuid.UUID,
	start, end time.Time,
	totalHours int64,
	totalCost Money,
) HistoryRecord {
	return HistoryRecord{
		reservationID: reservationID,
		userID:        userID,
		lockerID:      lockerID,
		start:         start,
		end:           end,
		totalHours:    totalHours,
		totalCost:     totalCost,
	}
}

func (h HistoryRecord) ReservationID() uuid.UUID { return h.reservationID }
func (h HistoryRecord) UserID() uuid.UUID        { return h.userID }
func (h HistoryRecord) LockerID() uuid.UUID      { return h.lockerID }
func (h HistoryRecord) Start() time.Time         { return h.start }
func (h HistoryRecord) End() time.Time           { return h.end }
func (h HistoryRecord) TotalHours() int64        { return h.totalHours }
func (h HistoryRecord) TotalCost() Money         { return h.totalCost }
