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

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
	Logger  *slog.Logger
}

// VisitHandler holds dependencies for visit-related handlers
type VisitHandler struct {
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
	now     func() time.Time
}

func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		visitUC: params.VisitUC,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// CheckIn opens a visit at a PDV identified by id or scanned label.
func (h *VisitHandler) CheckIn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.CheckInInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	visit, err := h.visitUC.CheckIn(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, visit)
}

func (h *VisitHandler) CheckOut(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	visitID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CheckOutInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	visit, err := h.visitUC.CheckOut(c.Request().Context(), userID, visitID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

func (h *VisitHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	visitID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CancelVisitInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	visit, err := h.visitUC.Cancel(c.Request().Context(), userID, visitID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

func (h *VisitHandler) GetActive(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	visit, err := h.visitUC.GetActiveVisit(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

func (h *VisitHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	visitID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	visit, err := h.visitUC.GetVisit(c.Request().Context(), actor, visitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

// List returns the caller's visits checked in within from/to.
func (h *VisitHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	from, to, err := timeRange(c, h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	visits, err := h.visitUC.ListVisits(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visits)
}
