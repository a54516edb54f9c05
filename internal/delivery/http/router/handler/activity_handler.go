package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	custommiddleware "mapnmeet/internal/delivery/http/middleware"
	"mapnmeet/internal/delivery/http/response"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultNearbyRadius is used when a proximity query omits radius, meters.
const defaultNearbyRadius = 5000.0

// ActivityHandler holds dependencies for activity directory handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, logger: logger}
}

// Create registers a new activity owned by the caller.
func (h *ActivityHandler) Create(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input *usecase.CreateActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	activity, err := h.uc.Create(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, activity, "Activity created")
}

// Get returns one activity with creator and joinees.
func (h *ActivityHandler) Get(c echo.Context) error {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	activity, err := h.uc.Get(c.Request().Context(), activityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "")
}

// List returns active activities, optionally proximity-filtered with
// ?near=lat,lng&radius=meters.
func (h *ActivityHandler) List(c echo.Context) error {
	input := &usecase.ListActivitiesInput{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	if near := c.QueryParam("near"); near != "" {
		lat, lng, err := parseLatLng(near)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid near parameter, expected lat,lng")
		}

		input.Near = true
		input.Lat = lat
		input.Lng = lng
		input.Radius = defaultNearbyRadius
		if radius := c.QueryParam("radius"); radius != "" {
			parsed, err := strconv.ParseFloat(radius, 64)
			if err != nil || parsed <= 0 {
				return response.BadRequest(c, "INVALID_INPUT", "Invalid radius parameter")
			}
			input.Radius = parsed
		}
	}

	activities, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "")
}

// ListByCreator returns the target user's own activities, cancelled included.
func (h *ActivityHandler) ListByCreator(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	activities, err := h.uc.ListByCreator(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "")
}

// ListByParticipant returns the active activities the target user joined.
func (h *ActivityHandler) ListByParticipant(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	activities, err := h.uc.ListByParticipant(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "")
}

// Update modifies an activity. Creator-only, enforced by the usecase.
func (h *ActivityHandler) Update(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	var input *usecase.UpdateActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	activity, err := h.uc.Update(c.Request().Context(), callerID, activityID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "Activity updated")
}

// Cancel soft-cancels an activity. Creator-only, enforced by the usecase.
func (h *ActivityHandler) Cancel(c echo.Context) error {
	callerID, ok := custommiddleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	if err := h.uc.Cancel(c.Request().Context(), callerID, activityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity cancelled")
}

// QRCode streams the activity's share QR code as a PNG.
func (h *ActivityHandler) QRCode(c echo.Context) error {
	activityID, err := uuid.Parse(c.Param("activityId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid activity id")
	}

	pngBytes, err := h.uc.ShareQRCode(c.Request().Context(), activityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

func parseLatLng(raw string) (lat, lng float64, err error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("expected lat,lng")
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, errors.New("coordinates out of range")
	}

	return lat, lng, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}

	return parsed
}
