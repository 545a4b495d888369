// Package output renders lc-dir's user-facing status lines.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for status lines.
type Styles struct {
	Success lipgloss.Style
	Command lipgloss.Style
	Error   lipgloss.Style
}

// Renderer writes styled messages. Colors are only emitted when the
// destination writer is a terminal that supports them.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
	errSty *Styles
}

func newStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Command: r.NewStyle().Foreground(lipgloss.Color("6")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// NewRenderer creates a Renderer writing status to out and errors to errOut.
func NewRenderer(out, errOut io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		styles: newStyles(out),
		errSty: newStyles(errOut),
	}
}

// Found reports that query resolved to path ("." for the project root).
func (r *Renderer) Found(query, path string) {
	if path == "" {
		path = "."
	}
	fmt.Fprintf(r.out, "%s '%s' → %s\n", r.styles.Success.Render("Found:"), query, path)
}

// Command echoes an external command line before it runs.
func (r *Renderer) Command(line string) {
	fmt.Fprintf(r.out, "%s %s\n", r.styles.Command.Render(">>"), line)
}

// Error prints err to the error writer. Joined errors get one line each.
func (r *Renderer) Error(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			r.Error(e)
		}
		return
	}
	fmt.Fprintf(r.errOut, "%s %v\n", r.errSty.Error.Render("Error:"), err)
}
