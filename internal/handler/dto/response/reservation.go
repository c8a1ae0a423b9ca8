package response

import (
	"time"

	"locker-hub/internal/usecase/commands"
	"locker-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReserveResponse struct {
	ReservationID  uuid.UUID `json:"reservationId"`
	LockerID       uuid.UUID `json:"lockerId"`
	AccessCode     string    `json:"accessCode"`
	Status         string    `json:"status"`
	StartTime      time.Time `json:"startTime"`
	ExpiresAt      time.Time `json:"expiresAt"`
	TotalCostCents int64     `json:"totalCostCents"`
}

type ExtendResponse struct {
	ReservationID       uuid.UUID `json:"reservationId"`
	NewEndTime          time.Time `json:"newEndTime"`
	AdditionalCostCents int64     `json:"additionalCostCents"`
	TotalCostCents      int64     `json:"totalCostCents"`
	ExtensionCount      int       `json:"extensionCount"`
}

type ReleaseResponse struct {
	ReservationID  uuid.UUID `json:"reservationId"`
	ActualEndTime  time.Time `json:"actualEndTime"`
	TotalHours     int64     `json:"totalHours"`
	TotalCostCents int64     `json:"totalCostCents"`
}

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	LockerID        uuid.UUID  `json:"lockerId"`
	StartTime       time.Time  `json:"startTime"`
	ExpectedEndTime time.Time  `json:"expectedEndTime"`
	ExtendedEndTime *time.Time `json:"extendedEndTime,omitempty"`
	ActualEndTime   *time.Time `json:"actualEndTime,omitempty"`
	Status          string     `json:"status"`
	HourlyRateCents int64      `json:"hourlyRateCents"`
	TotalCostCents  int64      `json:"totalCostCents"`
	ExtensionCount  int        `json:"extensionCount"`
	AccessCode      string     `json:"accessCode"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type HistoryResponse struct {
	ReservationID  uuid.UUID `json:"reservationId"`
	LockerID       uuid.UUID `json:"lockerId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	TotalHours     int64     `json:"totalHours"`
	TotalCostCents int64     `json:"totalCostCents"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		ReservationID:  r.ReservationID,
		LockerID:       r.LockerID,
		AccessCode:     r.AccessCode,
		Status:         r.Status.String(),
		StartTime:      r.StartTime,
		ExpiresAt:      r.ExpiresAt,
		TotalCostCents: r.TotalCost.Cents(),
	}
}

func FromExtendResult(r *commands.ExtendResult) *ExtendResponse {
	return &ExtendResponse{
		ReservationID:       r.ReservationID,
		NewEndTime:          r.NewEndTime,
		AdditionalCostCents: r.AdditionalCost.Cents(),
		TotalCostCents:      r.TotalCost.Cents(),
		ExtensionCount:      r.ExtensionCount,
	}
}

func FromReleaseResult(r *commands.ReleaseResult) *ReleaseResponse {
	return &ReleaseResponse{
		ReservationID:  r.ReservationID,
		ActualEndTime:  r.ActualEndTime,
		TotalHours:     r.TotalHours,
		TotalCostCents: r.TotalCost.Cents(),
	}
}

// Views and responses share field names; copier maps them one to one.
func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromHistoryViews(views []*queries.HistoryView) ([]*HistoryResponse, error) {
	res := make([]*HistoryResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
