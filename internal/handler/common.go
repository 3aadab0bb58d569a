package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mateusfigmelo/msc-backend/internal/service"
	"github.com/mateusfigmelo/msc-backend/pkg/response"
)

// parseID reads a numeric route parameter. A missing or malformed value is a
// validation failure, reported before any service call.
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, service.Validation(name + " not found")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, service.Validation("invalid " + name)
	}
	return uint(id), nil
}

// respondError converts a service failure into the error envelope. Every
// failure a handler sees passes through here; nothing propagates unhandled.
func respondError(c echo.Context, err error) error {
	svcErr := service.AsError(err)
	switch svcErr.Kind {
	case service.KindNotFound:
		return response.Error(c, http.StatusNotFound, svcErr.Message)
	case service.KindValidation:
		return response.Error(c, http.StatusBadRequest, svcErr.Message)
	default:
		// Persistence messages pass through verbatim, matching the contract
		// callers already depend on.
		return response.Error(c, http.StatusInternalServerError, svcErr.Message)
	}
}
