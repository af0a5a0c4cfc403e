// Package context carries per-request values from the echo layer down to the
// services: the request id, a request-scoped logger and the signed-in user.
package context

import (
	"context"
	"log/slog"

	"blog/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request id.
const HeaderXRequestID = "X-Request-Id"

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// echo.Context store keys
const (
	echoRequestIDKey   = "request_id"
	echoCurrentUserKey = "current_user"
)

// SetRequestID records the request id on both the echo context and the request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// RequestID returns the id set by SetRequestID, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the request-scoped logger, or nil outside a request.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetCurrentUser stores the account resolved from the session cookie. The
// request-scoped logger, when present, gains a user_id attribute so every
// later log line of the request names the caller.
func SetCurrentUser(c echo.Context, user *entity.User) {
	if user == nil {
		return
	}
	c.Set(echoCurrentUserKey, user)

	ctx := c.Request().Context()
	if logger := LoggerFromContext(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.Int64("user_id", user.ID)))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// GetCurrentUser returns the signed-in account, or nil for anonymous requests.
func GetCurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(echoCurrentUserKey).(*entity.User)

	return user
}
