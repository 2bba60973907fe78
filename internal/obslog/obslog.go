// Package obslog builds the structured logger every planning invocation
// carries, following theRebelliousNerd-codenerd's cmd/nerd/main.go
// zap.NewProductionConfig pattern, and stamps each invocation with a trace
// id via github.com/google/uuid. A random uuid suits a trace id, since it is
// explicitly per-invocation and carries no momentum-preservation
// requirement (contrast internal/ids, whose ids must be stable).
package obslog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger at InfoLevel, or DebugLevel when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// NewTraceID returns a fresh per-invocation trace id. Never use this (or
// any other random source) to derive a chain, step, or anchor id — those
// must survive being recomputed; see internal/ids.
func NewTraceID() string {
	return uuid.NewString()
}

// WithTrace returns a child logger carrying the invocation's trace id and
// user/date fields, attached once at invocation start.
func WithTrace(logger *zap.Logger, traceID, userID, date string) *zap.Logger {
	return logger.With(
		zap.String("trace_id", traceID),
		zap.String("user_id", userID),
		zap.String("date", date),
	)
}
