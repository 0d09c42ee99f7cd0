package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Kevininininin/Collage/internal/term"
)

const banner = `       _           _
 _ __ | |__   ___ | |_ ___  _ __  _ __ ___ _ __
| '_ \| '_ \ / _ \| __/ _ \| '_ \| '__/ _ \ '_ \
| |_) | | | | (_) | || (_) | |_) | | |  __/ |_) |
| .__/|_| |_|\___/ \__\___/| .__/|_|  \___| .__/
|_|                        |_|            |_|`

// PrintBanner prints the ASCII art banner to w, in bold magenta when colors
// are enabled.
func PrintBanner(w io.Writer) {
	style := newRenderer(w).NewStyle().
		Foreground(lipgloss.Color("13")).
		Bold(true)
	fmt.Fprintln(w, style.Render(banner))
}

// newRenderer returns a lipgloss renderer for w whose color profile follows
// the process-wide color decision in term rather than lipgloss's own probing.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if term.Enabled() {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
