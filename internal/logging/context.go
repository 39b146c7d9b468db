package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithWindowID creates a child logger with a window_id field
func WithWindowID(ctx context.Context, windowID string) context.Context {
	return withStr(ctx, "window_id", windowID)
}

// WithSessionID creates a child logger with a session_id field
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return withStr(ctx, "session_id", sessionID)
}

func withStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str(key, value).Logger()
	return WithContext(ctx, childLogger)
}
