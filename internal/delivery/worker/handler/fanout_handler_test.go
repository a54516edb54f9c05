package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapnmeet/config"
	"mapnmeet/internal/domain/constants"
	"mapnmeet/internal/domain/entity"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/service"
	mockUsecase "mapnmeet/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFanoutHandler(t *testing.T) (*FanoutHandler, *mockUsecase.MockNotificationUsecase) {
	notificationSvc := mockUsecase.NewMockNotificationUsecase(t)
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderDirect},
	}
	cfg.Env.Env = constants.EnvDevelop
	handler := NewFanoutHandler(FanoutHandlerParams{
		Config:          cfg,
		Logger:          slog.Default(),
		NotificationSvc: notificationSvc,
	})

	return handler, notificationSvc
}

func pushRequest(t *testing.T, event *service.ActivityEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := PubSubMessage{Subscription: "projects/test/subscriptions/fanout"}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = "message-1"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func recordPush(t *testing.T, handler *FanoutHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/worker/fanout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestFanoutHandler_HandlePush_Success(t *testing.T) {
	handler, notificationSvc := newTestFanoutHandler(t)

	event := &service.ActivityEvent{
		Type:         entity.NotificationNewParticipant,
		ActivityID:   uuid.New().String(),
		ActorID:      uuid.New().String(),
		Message:      "Someone joined your activity",
		RecipientIDs: []string{uuid.New().String()},
	}

	var received *service.ActivityEvent
	notificationSvc.EXPECT().
		FanOut(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Run(func(ctx context.Context, e *service.ActivityEvent) {
			received = e
		}).
		Return(nil)

	rec := recordPush(t, handler, pushRequest(t, event, map[string]string{"request_id": "req-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, event.ActivityID, received.ActivityID)
	assert.Equal(t, event.RecipientIDs, received.RecipientIDs)
}

func TestFanoutHandler_HandlePush_TransientFailure(t *testing.T) {
	handler, notificationSvc := newTestFanoutHandler(t)

	event := &service.ActivityEvent{
		Type:         entity.NotificationActivityCancelled,
		ActivityID:   uuid.New().String(),
		RecipientIDs: []string{uuid.New().String()},
	}

	notificationSvc.EXPECT().
		FanOut(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Return(errors.New("db connection lost"))

	rec := recordPush(t, handler, pushRequest(t, event, nil))

	// A transient failure asks Pub/Sub for a redelivery.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFanoutHandler_HandlePush_MalformedEvent(t *testing.T) {
	handler, notificationSvc := newTestFanoutHandler(t)

	event := &service.ActivityEvent{
		Type:         entity.NotificationType("carrier_pigeon"),
		RecipientIDs: []string{uuid.New().String()},
	}

	notificationSvc.EXPECT().
		FanOut(mock.Anything, mock.AnythingOfType("*service.ActivityEvent")).
		Return(domainerrors.ErrValidationFailed.WrapMessage("unknown notification type"))

	rec := recordPush(t, handler, pushRequest(t, event, nil))

	// Malformed events are acked so they are not redelivered forever.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFanoutHandler_HandlePush_BadEnvelope(t *testing.T) {
	handler, _ := newTestFanoutHandler(t)

	rec := recordPush(t, handler, `{"message":{"data":"not-base64!!"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
