package request

import "github.com/google/uuid"

type RequestOTPRequest struct {
	Phone   string     `json:"phone" binding:"required"`
	Purpose string     `json:"purpose" binding:"required"`
	UserID  *uuid.UUID `json:"userId,omitempty"`
}

// VerifyOTPRequest leaves format checks to the verifier so every malformed
// code is answered with valid=false rather than a validation error.
type VerifyOTPRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
}
