package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	// LoggerKey holds the request-scoped *zap.Logger.
	LoggerKey contextKey = "logger"
	// RequestIDKey holds the request correlation id.
	RequestIDKey contextKey = "request_id"
	// UserIDKey holds the authenticated user's id.
	UserIDKey contextKey = "user_id"
)

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext returns the attached logger, or a nop logger so callers never
// nil-check.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// WithRequestID stores the request id and hands back a logger already
// tagged with it.
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	l := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, l), l
}

// WithUserID stores the user id and hands back a logger already tagged
// with it.
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	l := logger.With(zap.String("user_id", userID))
	return WithContext(ctx, l), l
}

// GetRequestID returns the stored request id, or "".
func GetRequestID(ctx context.Context) string {
	s, _ := ctx.Value(RequestIDKey).(string)
	return s
}

// GetUserID returns the stored user id, or "".
func GetUserID(ctx context.Context) string {
	s, _ := ctx.Value(UserIDKey).(string)
	return s
}

// L is the one-call accessor: the context logger tagged with whichever of
// request id and user id are present.
func L(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)
	if rid := GetRequestID(ctx); rid != "" {
		l = l.With(zap.String("request_id", rid))
	}
	if uid := GetUserID(ctx); uid != "" {
		l = l.With(zap.String("user_id", uid))
	}
	return l
}
