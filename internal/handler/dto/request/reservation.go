package request

import "github.com/google/uuid"

type CreateReservationRequest struct {
	LockerID      uuid.UUID `json:"lockerId" binding:"required"`
	DurationHours float64   `json:"durationHours" binding:"required"`
}

type ExtendReservationRequest struct {
	AdditionalHours float64 `json:"additionalHours" binding:"required"`
}

type ListReservationsQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
