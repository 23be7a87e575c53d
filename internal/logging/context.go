package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey carries the run's logger through the compile pipeline, so the
// pipeline's parse-stage and typecheck-stage traces go through whatever the
// CLI configured instead of the package default. The per-file workers do not
// log.
type loggerKey struct{}

// WithLogger returns a context with the given logger attached.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves the logger attached by WithLogger, falling back to
// the package default when the context carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// WithStage returns ctx carrying a child logger tagged with the pipeline
// stage ("parse", "typecheck"), so -d traces from different stages can be
// told apart.
func WithStage(ctx context.Context, stage string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(FieldStage, stage))
}
