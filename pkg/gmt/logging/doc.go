// Package logging provides a minimal logging facade for the GMT wrapper.
//
// The Logger interface wraps the subset of log/slog the wrapper uses so that
// applications can plug in their own implementation or silence the library:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom handler
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger := logging.New(slog.New(handler))
//
// # Attributes
//
// Library and session records use a fixed set of keys built by Lib, Session,
// Module and Status so that log processors can filter native calls.
//
// # Goroutine Tagging
//
// Native sessions must not be shared between goroutines. GoID wraps a
// slog.Handler and stamps each record with the calling goroutine's id, which
// makes such sharing visible in the logs.
package logging
