package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 链路 ID 在 Context 里的键
const TraceIDKey = "trace_id"

// WithTraceID 把链路 ID 写进 Context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// TraceIDFromContext 取出链路 ID，取不到返回空串
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// ContextHandler 在每条日志上附加链路 ID
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		r.AddAttrs(log.String(TraceIDKey, traceID))
	}
	return h.Handler.Handle(ctx, r)
}
