package response

import (
	"time"

	"locker-hub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LockerResponse struct {
	ID              uuid.UUID `json:"id"`
	LocationID      uuid.UUID `json:"locationId"`
	Size            string    `json:"size"`
	Status          string    `json:"status"`
	Code            string    `json:"code"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type LocationResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distanceMeters"`
}

func FromLockerView(v *queries.LockerView) (*LockerResponse, error) {
	var res LockerResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromLockerViews(views []*queries.LockerView) ([]*LockerResponse, error) {
	res := make([]*LockerResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromLocationViews(views []*queries.LocationView) ([]*LocationResponse, error) {
	res := make([]*LocationResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
