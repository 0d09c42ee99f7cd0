// Package logging provides the leveled console logger used by every stage,
// with an optional structured JSON log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Kevininininin/Collage/internal/config"
	"github.com/Kevininininin/Collage/internal/term"
)

// Logger prints timestamped, optionally colored lines to the console and,
// when a log file is configured, mirrors each line as a JSON entry tagged
// with the run id.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
	runID   string

	file *os.File
	zl   *zap.Logger
}

// NewLogger configures terminal colors from cfg and logs to stdout/stderr.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return New(cfg, os.Stdout, os.Stderr)
}

// New is like [NewLogger] but writes console output to out (and ERROR lines
// to errOut).
func New(cfg *config.Config, out, errOut io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{
		out:     out,
		errOut:  errOut,
		verbose: cfg.Verbose,
		runID:   uuid.NewString(),
		zl:      zap.NewNop(),
	}

	if cfg.LogFile != "" {
		if err := l.openFile(cfg.LogFile); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Logger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if l.verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), level)

	l.file = f
	l.zl = zap.New(core).With(zap.String("run_id", l.runID))
	return nil
}

// RunID returns the identifier attached to every structured log entry.
func (l *Logger) RunID() string { return l.runID }

// Close flushes and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	_ = l.zl.Sync()
	err := l.file.Close()
	l.file = nil
	l.zl = zap.NewNop()
	return err
}

func (l *Logger) line(level, color string, zlevel zapcore.Level, text string, fields ...zap.Field) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+term.Paint(color, "["+level+"]")+" "+text+"\n")

	if ce := l.zl.Check(zlevel, text); ce != nil {
		ce.Write(fields...)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, zapcore.InfoLevel, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, zapcore.InfoLevel, fmt.Sprintf(format, args...), zap.Bool("success", true))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, zapcore.WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to the error stream.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, zapcore.ErrorLevel, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose is true.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, zapcore.DebugLevel, fmt.Sprintf(format, args...))
}
