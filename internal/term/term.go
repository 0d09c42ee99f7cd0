// Package term holds the process-wide ANSI color state and TTY detection.
//
// The escape sequences are package-level strings shared by the logger and
// the display package. [Configure] fills them in once at startup; when
// colors are off they stay empty and [Paint] returns its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Kevininininin/Collage/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	NC     = "" // Reset sequence.
)

// Configure resolves mode and sets the package-level ANSI variables.
// Called once from [logging.NewLogger].
func Configure(mode config.ColorMode) {
	if !resolve(mode) {
		Red, Green, Yellow, Blue, Cyan, NC = "", "", "", "", "", ""
		return
	}
	Red = "\033[1;91m"
	Green = "\033[1;92m"
	Yellow = "\033[1;93m"
	Blue = "\033[1;94m"
	Cyan = "\033[1;96m"
	NC = "\033[0m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// Paint wraps s in color and a reset. With colors disabled, or an empty
// color, s is returned as is.
func Paint(color, s string) string {
	if color == "" || !Enabled() {
		return s
	}
	return color + s + NC
}

// resolve decides whether colors should be enabled from the configured mode,
// TTY detection and the NO_COLOR convention (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(os.Stdout) && !strings.EqualFold(os.Getenv("TERM"), "dumb")
}

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin/MSYS pseudo terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
