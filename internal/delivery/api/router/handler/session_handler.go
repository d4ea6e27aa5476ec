package handler

import (
	"context"
	"log/slog"
	"net/http"

	"fieldtrack/internal/delivery/api/middleware"
	"fieldtrack/internal/delivery/api/response"
	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves working-session lifecycle and reads
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Start opens a session for the caller.
func (h *SessionHandler) Start(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req usecase.SessionLocationInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.StartSession(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// End closes the session and returns it with its final metrics.
func (h *SessionHandler) End(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.SessionLocationInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.EndSession(c.Request().Context(), userID, sessionID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *SessionHandler) Pause(c echo.Context) error {
	return h.transition(c, h.sessionUC.PauseSession)
}

func (h *SessionHandler) Resume(c echo.Context) error {
	return h.transition(c, h.sessionUC.ResumeSession)
}

func (h *SessionHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.sessionUC.CancelSession)
}

type sessionTransition func(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error)

func (h *SessionHandler) transition(c echo.Context, apply sessionTransition) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := apply(c.Request().Context(), userID, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Recompute refreshes metrics of a session the caller may read.
func (h *SessionHandler) Recompute(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.sessionUC.GetSession(ctx, actor, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.RecomputeMetrics(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *SessionHandler) GetActive(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	session, err := h.sessionUC.GetActiveSession(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

func (h *SessionHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.GetSession(c.Request().Context(), actor, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Track returns the session path as a bare GeoJSON FeatureCollection so map clients can load it directly.
func (h *SessionHandler) Track(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fc, err := h.sessionUC.SessionTrack(c.Request().Context(), actor, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal session track")
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}
