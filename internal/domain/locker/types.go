package locker

import "strings"

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOccupied    Status = "OCCUPIED"
	StatusMaintenance Status = "MAINTENANCE"
)

// transitions is the complete set of allowed status changes.
var transitions = map[Status][]Status{
	StatusAvailable:   {StatusOccupied, StatusMaintenance},
	StatusOccupied:    {StatusAvailable},
	StatusMaintenance: {StatusAvailable},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Size string

const (
	SizeSmall  Size = "SMALL"
	SizeMedium Size = "MEDIUM"
	SizeLarge  Size = "LARGE"
)

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

func ParseSize(s string) (Size, error) {
	size := Size(strings.ToUpper(strings.TrimSpace(s)))
	if !size.IsValid() {
		return "", ErrInvalidSize
	}
	return size, nil
}
