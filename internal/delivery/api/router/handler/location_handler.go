package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldtrack/internal/delivery/api/middleware"
	"fieldtrack/internal/delivery/api/response"
	"fieldtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler serves the device ingestion endpoints
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
	now        func() time.Time
}

func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// Ingest stores one sample.
func (h *LocationHandler) Ingest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.LocationSampleInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	sample, err := h.locationUC.Ingest(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sample)
}

// IngestBatch stores an offline burst atomically; the usecase enforces the batch size limit.
func (h *LocationHandler) IngestBatch(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.LocationBatchInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	samples, err := h.locationUC.IngestBatch(c.Request().Context(), userID, req.Samples)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"accepted": len(samples),
		"samples":  samples,
	})
}

// ListSamples returns the caller's own samples.
func (h *LocationHandler) ListSamples(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	from, to, err := timeRange(c, h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	samples, err := h.locationUC.ListSamples(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, samples)
}
