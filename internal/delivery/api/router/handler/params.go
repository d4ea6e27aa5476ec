package handler

import (
	"strconv"
	"time"

	"fieldtrack/internal/delivery/api/response"
	domainerrors "fieldtrack/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// defaultListWindow bounds list reads when the client omits from/to.
const defaultListWindow = 24 * time.Hour

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + ": " + c.Param(name))
	}

	return id, nil
}

// timeRange reads RFC 3339 from/to query parameters, defaulting to the last 24 hours.
func timeRange(c echo.Context, now time.Time) (from, to time.Time, err error) {
	to = now
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, time.Time{}, domainerrors.ErrValidationFailed.WithDetails("to must be RFC 3339")
		}
	}

	from = to.Add(-defaultListWindow)
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, time.Time{}, domainerrors.ErrValidationFailed.WithDetails("from must be RFC 3339")
		}
	}

	return from, to, nil
}

func queryFloat(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a number")
	}

	return v, nil
}

// bindAndValidate decodes the body into req and runs the echo validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
