package handler

import (
	"net/http"

	"fieldtrack/internal/delivery/api/response"
	"fieldtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PDVHandlerParams holds dependencies for PDVHandler, injected by Fx.
type PDVHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	PDVUC      usecase.PDVUsecase
}

// PDVHandler serves point-of-sale geofence checks and labels
type PDVHandler struct {
	geofenceUC usecase.GeofenceUsecase
	pdvUC      usecase.PDVUsecase
}

func NewPDVHandler(params PDVHandlerParams) *PDVHandler {
	return &PDVHandler{
		geofenceUC: params.GeofenceUC,
		pdvUC:      params.PDVUC,
	}
}

// EvaluateGeofence answers whether lat/lng lies inside the PDV's active geofence.
func (h *PDVHandler) EvaluateGeofence(c echo.Context) error {
	pdvID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.geofenceUC.Evaluate(c.Request().Context(), pdvID, lat, lng)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Label streams the PDV's check-in QR code as PNG.
func (h *PDVHandler) Label(c echo.Context) error {
	pdvID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.pdvUC.Label(c.Request().Context(), pdvID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
