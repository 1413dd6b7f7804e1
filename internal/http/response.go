package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmussard/easyloc-api/internal/service"
)

// Envelope is the uniform response body: "OK" plus data on success, an error
// description in status otherwise.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Status: "OK", Message: message, Data: data})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, Envelope{Status: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, Envelope{Status: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, Envelope{Status: err.Error()})
	default:
		h.log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, Envelope{Status: "internal error"})
	}
}
