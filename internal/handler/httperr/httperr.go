package httperr

import (
	"net/http"

	"locker-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status of err's failure category.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(err error) (int, string) {
	switch errs.Category(err) {
	case errs.ErrInvalidInput:
		return http.StatusBadRequest, "Invalid request"
	case errs.ErrNotFound:
		return http.StatusNotFound, "Not found"
	case errs.ErrForbidden:
		return http.StatusForbidden, "Forbidden"
	case errs.ErrResourceUnavailable:
		return http.StatusConflict, "Locker is not available"
	case errs.ErrConflict:
		return http.StatusConflict, "Conflicting state, reload and retry"
	case errs.ErrTransient:
		return http.StatusServiceUnavailable, "Temporarily unavailable, retry"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
