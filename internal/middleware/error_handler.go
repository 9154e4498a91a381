package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MapError classifies errors pushed onto the gin context. Upstream
// being unreachable is the only expected failure in a read-only
// in-memory service, and it maps to 502 rather than 500 so operators
// can tell "we broke" from "they broke" at a glance.
func MapError(err error) (int, ErrorResponse) {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, ErrorResponse{Error: "upstream request timed out"}
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway, ErrorResponse{
			Error:   "upstream payments API unavailable",
			Details: upstream.Error(),
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// UpstreamError marks a failure talking to the upstream payments API.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
