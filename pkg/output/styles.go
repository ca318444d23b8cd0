package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F0F0F0"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	successColor = lipgloss.AdaptiveColor{Light: "#00A86B", Dark: "#00D084"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF5252"}
	warningColor = lipgloss.AdaptiveColor{Light: "#F57C00", Dark: "#FFB74D"}
	pathColor    = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#CE93D8"}
)

// styles holds the lipgloss styles of one renderer. They are bound to the
// renderer's writer so color detection follows that writer, not stdout.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	path    lipgloss.Style
	indent  lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title:   r.NewStyle().Foreground(headingColor).Bold(true),
		muted:   r.NewStyle().Foreground(mutedColor),
		success: r.NewStyle().Foreground(successColor).Bold(true),
		err:     r.NewStyle().Foreground(errorColor).Bold(true),
		warning: r.NewStyle().Foreground(warningColor).Bold(true),
		path:    r.NewStyle().Foreground(pathColor),
		indent:  r.NewStyle().PaddingLeft(2),
	}
}

// Operation indicators
const (
	successMark = "✓"
	errorMark   = "✗"
	skipMark    = "•"
	warnMark    = "!"
)
