package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// WithTraceID attaches the request trace ID to ctx for the audit log.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// SessionLogger writes the audit trail of credential lifecycle events.
// Token values are never logged.
type SessionLogger struct {
	logger *slog.Logger
}

func NewSessionLogger(logger *slog.Logger) *SessionLogger {
	return &SessionLogger{logger: logger}
}

func (sl *SessionLogger) LogSessionPersisted(ctx context.Context, clientID uuid.UUID) {
	sl.logger.InfoContext(ctx, "session persisted",
		slog.String("event_type", "session_persisted"),
		slog.String("client_id", clientID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFrom(ctx)),
	)
}

func (sl *SessionLogger) LogSessionCleared(ctx context.Context, clientID uuid.UUID) {
	sl.logger.InfoContext(ctx, "session cleared",
		slog.String("event_type", "session_cleared"),
		slog.String("client_id", clientID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFrom(ctx)),
	)
}

func (sl *SessionLogger) LogCredentialDiscarded(ctx context.Context, clientID uuid.UUID, errorMsg string) {
	sl.logger.WarnContext(ctx, "undecryptable credential discarded",
		slog.String("event_type", "credential_discarded"),
		slog.String("client_id", clientID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFrom(ctx)),
	)
}

func (sl *SessionLogger) LogAuthorizationRejected(ctx context.Context, clientID uuid.UUID, operation string, status int) {
	sl.logger.WarnContext(ctx, "finance api rejected credential",
		slog.String("event_type", "authorization_rejected"),
		slog.String("client_id", clientID.String()),
		slog.String("operation", operation),
		slog.Int("status", status),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFrom(ctx)),
	)
}

func (sl *SessionLogger) LogDuplicateSubmission(ctx context.Context, clientID uuid.UUID, form Form) {
	sl.logger.InfoContext(ctx, "duplicate submission rejected",
		slog.String("event_type", "duplicate_submission"),
		slog.String("client_id", clientID.String()),
		slog.String("form", string(form)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFrom(ctx)),
	)
}
