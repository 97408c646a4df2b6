package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Init configures the default slog logger. Verbose enables debug-level
// output; otherwise only info and above is emitted.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// RunLog is the append-only plain-text log that accompanies a pipeline
// run. Lines are human-readable and timestamp-free; the file is not a
// parseable contract surface. A nil RunLog discards all writes.
type RunLog struct {
	path string
}

// OpenRunLog returns a run log that appends to path. The file is
// created on first write.
func OpenRunLog(path string) *RunLog {
	return &RunLog{path: path}
}

// Printf appends one formatted line to the run log. Write failures are
// reported through slog rather than interrupting the pipeline.
func (l *RunLog) Printf(format string, args ...any) {
	if l == nil {
		return
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("Failed to open run log", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, format+"\n", args...); err != nil {
		slog.Warn("Failed to write run log line", "path", l.path, "error", err)
	}
}
