package handler

import (
	"log/slog"
	"net/http"

	custommiddleware "mapnmeet/internal/delivery/http/middleware"
	"mapnmeet/internal/delivery/http/response"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ParticipationHandler holds dependencies for the join/leave endpoint.
type ParticipationHandler struct {
	uc     usecase.ParticipationUsecase
	logger *slog.Logger
}

// NewParticipationHandler is the constructor for ParticipationHandler, injected by Fx.
func NewParticipationHandler(uc usecase.ParticipationUsecase, logger *slog.Logger) *ParticipationHandler {
	return &ParticipationHandler{uc: uc, logger: logger}
}

type addParticipantInput struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	ActivityID string `json:"activityId" validate:"required,uuid"`
	Remove     bool   `json:"remove"`
}

// AddParticipant is the single join/leave endpoint: remove=false joins,
// remove=true leaves. A caller may only move themselves, except the
// activity's creator, who may remove any joinee.
func (h *ParticipationHandler) AddParticipant(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input addParticipantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid participation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	targetID, err := uuid.Parse(input.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	activityID, err := uuid.Parse(input.ActivityID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	ctx := c.Request().Context()

	switch {
	case targetID == callerID && !input.Remove:
		err = h.uc.Join(ctx, callerID, activityID)
	case targetID == callerID && input.Remove:
		err = h.uc.Leave(ctx, callerID, activityID)
	case input.Remove:
		// Only the activity's creator may remove someone else; the usecase
		// checks ownership under the row lock.
		err = h.uc.RemoveParticipant(ctx, callerID, activityID, targetID)
	default:
		return errors.WithStack(domainerrors.ErrNotAuthorized.WrapMessage("cannot join on behalf of another user"))
	}
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Joined activity"
	if input.Remove {
		message = "Left activity"
	}

	return response.Success(c, http.StatusOK, nil, message)
}
