package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"numcast/internal/runner"
)

// Logger wraps slog.Logger with numcast field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler discards
// everything.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger writing logfmt records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// newLoggerFromFlags builds the logger selected by -log-level and
// -log-format. Level "off" disables logging.
func newLoggerFromFlags(w io.Writer, level, format string) (*Logger, error) {
	if strings.EqualFold(level, "off") {
		return NoopLogger(), nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q: want text or json", format)
	}
}

// WithCommand tags records with the running subcommand.
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{Logger: l.Logger.With("command", name)}
}

// WithPair tags records with a source and target type.
func (l *Logger) WithPair(from, to string) *Logger {
	return &Logger{Logger: l.Logger.With("from", from, "to", to)}
}

// LogCase logs the evaluation of a single case.
func (l *Logger) LogCase(ctx context.Context, res runner.Result) {
	attrs := []any{
		"case", res.Case.Name,
		"pair", res.Case.Pair(),
		"policy", res.Case.Policy.String(),
		"status", res.Evaluation.Status.String(),
	}

	if res.Passed {
		l.DebugContext(ctx, "case passed", attrs...)
	} else {
		l.WarnContext(ctx, "case failed", attrs...)
	}
}

// LogRun logs the summary of a case file run.
func (l *Logger) LogRun(ctx context.Context, path string, report *runner.Report, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"file", path,
			"error", err,
		)
		return
	}

	failed := report.Failed()
	if failed > 0 {
		l.WarnContext(ctx, "run completed with failures",
			"file", path,
			"total", len(report.Results),
			"failed", failed,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"file", path,
			"total", len(report.Results),
			"elapsed", elapsed,
		)
	}
}
