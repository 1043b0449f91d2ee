// Package logging defines the structured-logging interface shared by the
// client packages. The only implementation ships on top of log/slog, but
// nothing outside this package depends on that.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs:
//
//	log.Info(ctx, "request done", "path", path, "status", status)
type Logger interface {
	// Debug logs diagnostic detail that is off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
