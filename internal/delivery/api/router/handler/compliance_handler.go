package handler

import (
	"net/http"

	"fieldtrack/internal/delivery/api/middleware"
	"fieldtrack/internal/delivery/api/response"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplianceHandlerParams holds dependencies for ComplianceHandler, injected by Fx.
type ComplianceHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
}

type ComplianceHandler struct {
	complianceUC usecase.ComplianceUsecase
}

func NewComplianceHandler(params ComplianceHandlerParams) *ComplianceHandler {
	return &ComplianceHandler{complianceUC: params.ComplianceUC}
}

// scoreQuery binds GET /compliance. user_id defaults to the caller.
type scoreQuery struct {
	UserID  string `query:"user_id" validate:"omitempty,uuid"`
	RouteID string `query:"route_id" validate:"required,uuid"`
	From    string `query:"from" validate:"required"`
	To      string `query:"to" validate:"required"`
}

// Score reports the user's visit compliance on a route for an inclusive date range.
func (h *ComplianceHandler) Score(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return unauthorized(c)
	}

	var q scoreQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ScoreInput{
		RouteID:  uuid.MustParse(q.RouteID),
		DateFrom: q.From,
		DateTo:   q.To,
	}
	if q.UserID != "" {
		userID, err := uuid.Parse(q.UserID)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid user_id"))
		}
		input.UserID = userID
	}

	score, err := h.complianceUC.Score(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, score)
}
