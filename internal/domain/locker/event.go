package locker

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventReserved           EventType = "reserved"
	EventExtended           EventType = "extended"
	EventReleased           EventType = "released"
	EventCancelled          EventType = "cancelled"
	EventMaintenanceStarted EventType = "maintenance_started"
	EventMaintenanceEnded   EventType = "maintenance_ended"
)

// Event is the status notification emitted after a committed transition.
type Event struct {
	Type          EventType  `json:"type"`
	LockerID      uuid.UUID  `json:"locker_id"`
	Status        Status     `json:"status"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}
