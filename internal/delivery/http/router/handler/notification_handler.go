package handler

import (
	"log/slog"
	"net/http"

	custommiddleware "mapnmeet/internal/delivery/http/middleware"
	"mapnmeet/internal/delivery/http/response"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// List returns a page of the caller's unread notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	page, err := h.uc.List(c.Request().Context(), callerID, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// MarkRead marks one of the caller's notifications read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	notification, err := h.uc.MarkRead(c.Request().Context(), id, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification marked read")
}

// MarkAllRead marks all the caller's unread notifications read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	count, err := h.uc.MarkAllRead(c.Request().Context(), callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": count}, "Notifications marked read")
}

// Delete removes one of the caller's notifications.
func (h *NotificationHandler) Delete(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	if err := h.uc.Delete(c.Request().Context(), id, callerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// MassDelete removes the caller's notifications matching an optional filter.
func (h *NotificationHandler) MassDelete(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input *usecase.MassDeleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	count, err := h.uc.MassDelete(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": count}, "Notifications deleted")
}
