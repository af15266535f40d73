package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mzaharov/tenantnotes/internal/common"
)

// respond writes the API's JSON envelope: {success, message?, data?}.
func respond(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": status < http.StatusBadRequest}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// statusFor maps the error taxonomy onto HTTP status codes. Everything except
// internal failures is an expected outcome of the decision surface.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden),
		errors.Is(err, common.ErrQuotaExceeded),
		errors.Is(err, common.ErrAlreadyOnPlan):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes an error response. Internal failures get a generic message so
// storage details never leak; expected outcomes are surfaced verbatim and are
// logged by the caller at info/warn, not as errors.
func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
		message = "internal server error"
	}

	respond(c, status, message, nil)
	c.Abort()
}
