package pg

import "context"

// logger is the slog subset migration logging needs. Satisfied by
// *slog.Logger without importing it here.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
