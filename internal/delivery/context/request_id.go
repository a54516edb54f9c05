// Package context carries request-scoped values (request ID, logger)
// between the delivery layer and the usecases without ambient globals.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header used to propagate request IDs,
// both inbound (client or Pub/Sub push) and on responses.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID is the echo.Context key; echo stores values by string.
const echoKeyRequestID = "request_id"

// Unexported key types keep context values collision-proof.
type requestIDKey struct{}
type loggerKey struct{}

// GetRequestID returns the request ID stored in the echo context,
// minting a fresh one when the middleware has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID in the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID carried by a standard
// context, or "" when none was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// WithRequestID attaches the request ID to a standard context so it
// survives past the HTTP boundary (usecases, event publishing).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// WithLogger attaches a request-scoped logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to
// the supplied logger when the context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
