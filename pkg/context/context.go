// Package context 拓展上下文功能，将当前用户、日志等集成到上下文中，方便在应用程序各处传递和使用.
package context

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/yeisme/uploadvault/pkg/internal/model"
)

type ContextKey string

const (
	CurrentUserKey ContextKey = "currentUser"
	RequestIDKey   ContextKey = "requestID"
)

// WithCurrentUser 将已认证用户存储到 context 中.
func WithCurrentUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, CurrentUserKey, u)
}

// GetCurrentUser 从 context 中获取已认证用户，未认证时返回 nil.
func GetCurrentUser(ctx context.Context) *model.User {
	if u, ok := ctx.Value(CurrentUserKey).(*model.User); ok {
		return u
	}

	return nil
}

// WithRequestID 将请求 ID 存储到 context 中.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID 从 context 中获取请求 ID.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}

	return ""
}

// WithTraceContext 创建带有追踪上下文的logger.
func WithTraceContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		return logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return logger
}
