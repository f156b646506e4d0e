// Package logging is the structured logging surface shared by the server,
// its workflows and the client. The only implementation wraps log/slog.
package logging

import "context"

// Logger takes a message plus alternating key/value pairs:
//
//	log.Info(ctx, "files committed", "module", module, "count", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for conditions the caller recovered from, such as a
	// relocation that will be retried on the next commit.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that prefixes every record with args.
	With(args ...any) Logger
}
