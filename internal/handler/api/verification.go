package api

import (
	"net/http"

	reqdto "locker-hub/internal/handler/dto/request"
	resdto "locker-hub/internal/handler/dto/response"
	"locker-hub/internal/handler/httperr"
	"locker-hub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	cmds commands.VerificationCommands
}

func NewVerificationHandler(cmds commands.VerificationCommands) *VerificationHandler {
	return &VerificationHandler{cmds: cmds}
}

// @Summary Request OTP
// @Description Issue a one-time code by SMS. sent=false when throttled or delivery failed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestOTPRequest true "OTP request"
// @Success 202 {object} resdto.RequestOTPResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/otp/request [post]
func (h *VerificationHandler) RequestOTP(c *gin.Context) {
	var req reqdto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.RequestOTP(c.Request.Context(), commands.RequestOTPRequest{
		Phone:   req.Phone,
		Purpose: req.Purpose,
		UserID:  req.UserID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.RequestOTPResponse{Sent: result.Sent, ExpiresAt: result.ExpiresAt})
}

// @Summary Verify OTP
// @Description Consume a one-time code. Wrong, expired and reused codes all yield valid=false.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "OTP verification"
// @Success 200 {object} resdto.VerifyOTPResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/otp/verify [post]
func (h *VerificationHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	valid, err := h.cmds.VerifyOTP(c.Request.Context(), commands.VerifyOTPRequest{
		Phone:   req.Phone,
		Code:    req.Code,
		Purpose: req.Purpose,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.VerifyOTPResponse{Valid: valid})
}
