package populate

import (
	"fmt"
	"io"
	"log/slog"
)

// Reporter receives human-oriented progress and warning messages from a
// populate run. Warnings cover recoverable conditions (rows skipped, targets
// already populated); hard failures surface as errors from Run.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// WriterReporter prints messages to an io.Writer, one per line. The CLI uses
// it with stdout.
type WriterReporter struct {
	Out io.Writer
}

func (r WriterReporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

func (r WriterReporter) Warnf(format string, args ...any) {
	fmt.Fprintf(r.Out, "warning: "+format+"\n", args...)
}

// LogReporter routes messages to a structured logger. The daemon uses it for
// auto-population at startup.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Infof(format string, args ...any) {
	r.Logger.Info(fmt.Sprintf(format, args...))
}

func (r LogReporter) Warnf(format string, args ...any) {
	r.Logger.Warn(fmt.Sprintf(format, args...))
}

// NopReporter discards all messages.
type NopReporter struct{}

func (NopReporter) Infof(string, ...any) {}

func (NopReporter) Warnf(string, ...any) {}
