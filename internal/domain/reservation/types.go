package reservation

import "strings"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal states have no outgoing edges.
var transitions = map[Status][]Status{
	StatusActive: {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
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
