package response

import "time"

type RequestOTPResponse struct {
	Sent      bool       `json:"sent"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type VerifyOTPResponse struct {
	Valid bool `json:"valid"`
}
