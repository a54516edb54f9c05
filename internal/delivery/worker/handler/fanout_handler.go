// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"mapnmeet/config"
	deliverycontext "mapnmeet/internal/delivery/context"
	"mapnmeet/internal/domain/constants"
	domainerrors "mapnmeet/internal/domain/errors"
	"mapnmeet/internal/domain/service"
	"mapnmeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// isRetryableError decides whether a failed fan-out should be redelivered.
// Malformed events can never succeed, so only transient failures retry.
func isRetryableError(err error) bool {
	return !errors.Is(err, domainerrors.ErrValidationFailed)
}

// FanoutHandler handles Pub/Sub push messages carrying activity events and
// materializes them into notification rows.
type FanoutHandler struct {
	verifyPushAuth  bool
	pushAudience    string
	logger          *slog.Logger
	notificationSvc usecase.NotificationUsecase
}

// FanoutHandlerParams holds dependencies for the FanoutHandler
type FanoutHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc usecase.NotificationUsecase
}

// NewFanoutHandler creates a new Pub/Sub push handler
func NewFanoutHandler(params FanoutHandlerParams) *FanoutHandler {
	// Push OIDC verification only applies to real Google pushes outside dev
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	pushAudience := ""
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	return &FanoutHandler{
		verifyPushAuth:  verifyPushAuth,
		pushAudience:    pushAudience,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *FanoutHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse activity event
	var event service.ActivityEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse activity event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Request-scoped logger with the propagated request_id
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing activity event",
		slog.String("activity_id", event.ActivityID),
		slog.String("type", string(event.Type)),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	if err := h.notificationSvc.FanOut(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to fan out event",
			slog.String("activity_id", event.ActivityID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; malformed events get a 200 so
		// they are not retried forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed successfully",
		slog.String("activity_id", event.ActivityID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *FanoutHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ActivityEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the OIDC token Google attaches to push requests.
func (h *FanoutHandler) verifyPubSubToken(ctx context.Context, req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return errors.New("missing bearer token")
	}

	if _, err := idtoken.Validate(ctx, token, h.pushAudience); err != nil {
		return errors.Wrap(err, "token validation failed")
	}

	return nil
}
