package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type LockerView struct {
	ID              uuid.UUID `json:"id"`
	LocationID      uuid.UUID `json:"location_id"`
	Size            string    `json:"size"`
	Status          string    `json:"status"`
	Code            string    `json:"code"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LocationView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
}

type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	LockerID        uuid.UUID  `json:"locker_id"`
	StartTime       time.Time  `json:"start_time"`
	ExpectedEndTime time.Time  `json:"expected_end_time"`
	ExtendedEndTime *time.Time `json:"extended_end_time,omitempty"`
	ActualEndTime   *time.Time `json:"actual_end_time,omitempty"`
	Status          string     `json:"status"`
	HourlyRateCents int64      `json:"hourly_rate_cents"`
	TotalCostCents  int64      `json:"total_cost_cents"`
	ExtensionCount  int        `json:"extension_count"`
	AccessCode      string     `json:"access_code"`
	CreatedAt       time.Time  `json:"created_at"`
}

type HistoryView struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	LockerID       uuid.UUID `json:"locker_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	TotalHours     int64     `json:"total_hours"`
	TotalCostCents int64     `json:"total_cost_cents"`
}

func clampLimit(limit int) int32 {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	// #nosec G115 -- bounded by MaxListLimit
	return int32(limit)
}
