// Package logging defines the structured logger used across the portal
// client and its zap and slog backends.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/zap"
)

// Logger is a context-aware, structured logger. Variadic args are key/value
// pairs:
//
//	log.Info(ctx, "session restored", "user_id", p.ID, "role", p.Role)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}

// Backend names accepted by New.
const (
	BackendZap  = "zap"
	BackendSlog = "slog"
)

// New builds the logger selected by backend. The returned func flushes
// buffered entries and should be deferred by the caller.
func New(backend string) (Logger, func(), error) {
	switch backend {
	case "", BackendZap:
		z, err := zap.NewProduction()
		if err != nil {
			return nil, nil, fmt.Errorf("zap logger: %w", err)
		}
		return NewZapLogger(z), func() { _ = z.Sync() }, nil
	case BackendSlog:
		return NewSlogText(os.Stderr, slog.LevelInfo), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewZapLogger(zap.NewNop())
}
