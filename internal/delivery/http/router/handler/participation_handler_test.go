package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "mapnmeet/internal/delivery/http/middleware"
	"mapnmeet/internal/delivery/http/validator"
	domainerrors "mapnmeet/internal/domain/errors"
	mockUsecase "mapnmeet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParticipationTestContext(t *testing.T, body string, callerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/addParticipant", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(custommiddleware.ContextKeyUserID, callerID)

	return c, rec
}

func TestParticipationHandler_SelfJoin(t *testing.T) {
	uc := mockUsecase.NewMockParticipationUsecase(t)
	handler := NewParticipationHandler(uc, slog.Default())

	callerID := uuid.New()
	activityID := uuid.New()
	body := `{"userId":"` + callerID.String() + `","activityId":"` + activityID.String() + `"}`
	c, rec := newParticipationTestContext(t, body, callerID)

	uc.EXPECT().Join(c.Request().Context(), callerID, activityID).Return(nil)

	err := handler.AddParticipant(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Joined activity")
}

func TestParticipationHandler_SelfLeave(t *testing.T) {
	uc := mockUsecase.NewMockParticipationUsecase(t)
	handler := NewParticipationHandler(uc, slog.Default())

	callerID := uuid.New()
	activityID := uuid.New()
	body := `{"userId":"` + callerID.String() + `","activityId":"` + activityID.String() + `","remove":true}`
	c, rec := newParticipationTestContext(t, body, callerID)

	uc.EXPECT().Leave(c.Request().Context(), callerID, activityID).Return(nil)

	err := handler.AddParticipant(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Left activity")
}

func TestParticipationHandler_CreatorRemovesOther(t *testing.T) {
	uc := mockUsecase.NewMockParticipationUsecase(t)
	handler := NewParticipationHandler(uc, slog.Default())

	callerID := uuid.New()
	targetID := uuid.New()
	activityID := uuid.New()
	body := `{"userId":"` + targetID.String() + `","activityId":"` + activityID.String() + `","remove":true}`
	c, rec := newParticipationTestContext(t, body, callerID)

	uc.EXPECT().RemoveParticipant(c.Request().Context(), callerID, activityID, targetID).Return(nil)

	err := handler.AddParticipant(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParticipationHandler_JoinOnBehalfOfOther(t *testing.T) {
	uc := mockUsecase.NewMockParticipationUsecase(t)
	handler := NewParticipationHandler(uc, slog.Default())

	callerID := uuid.New()
	targetID := uuid.New()
	activityID := uuid.New()
	body := `{"userId":"` + targetID.String() + `","activityId":"` + activityID.String() + `"}`
	c, _ := newParticipationTestContext(t, body, callerID)

	err := handler.AddParticipant(c)

	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthorized))
}

func TestParticipationHandler_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockParticipationUsecase(t)
	handler := NewParticipationHandler(uc, slog.Default())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/addParticipant", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.AddParticipant(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestParticipationHandler_MissingActivityID(t *testing.T) {
	uc := mockUsecase.NewMockParticipationUsecase(t)
	handler := NewParticipationHandler(uc, slog.Default())

	callerID := uuid.New()
	body := `{"userId":"` + callerID.String() + `"}`
	c, _ := newParticipationTestContext(t, body, callerID)

	err := handler.AddParticipant(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
