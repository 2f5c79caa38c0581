package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"minilang/pkg/interpreter"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorInfo  = lipgloss.Color("#06B6D4")
)

// diagnostics writes user-facing error reports. Styles are resolved
// against the destination writer, so non-terminal output stays plain.
type diagnostics struct {
	w     io.Writer
	color bool

	label   lipgloss.Style
	line    lipgloss.Style
	snippet lipgloss.Style
}

func newDiagnostics(w io.Writer, color bool) *diagnostics {
	r := lipgloss.NewRenderer(w)
	return &diagnostics{
		w:       w,
		color:   color,
		label:   r.NewStyle().Bold(true).Foreground(colorError),
		line:    r.NewStyle().Foreground(colorInfo),
		snippet: r.NewStyle().Foreground(colorMuted),
	}
}

func (d *diagnostics) style(s lipgloss.Style, text string) string {
	if !d.color {
		return text
	}
	return s.Render(text)
}

// render reports err. Interpreter errors get their line, kind and
// snippet highlighted separately.
func (d *diagnostics) render(err error) {
	var ie *interpreter.Error
	if !errors.As(err, &ie) {
		fmt.Fprintf(d.w, "%s %s\n", d.style(d.label, "error:"), err)
		return
	}
	if ie.Line > 0 {
		fmt.Fprintf(d.w, "%s ", d.style(d.line, fmt.Sprintf("line %d:", ie.Line)))
	}
	fmt.Fprintf(d.w, "%s %s\n", d.style(d.label, ie.Kind.String()+":"), ie.Msg)
	if ie.Snippet != "" {
		fmt.Fprintf(d.w, "  %s\n", d.style(d.snippet, "|> "+ie.Snippet))
	}
}
