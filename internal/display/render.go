// Package display renders selector results for the terminal.
//
// Matched fortune bodies are the answer and go to the body writer;
// source headers are informational and go to the header writer. Both
// writes happen in the same pass, so a header always immediately
// precedes the first body of its run.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/fortune/internal/models"
)

// FallbackMessage is printed in random-pick mode when no fortunes exist.
const FallbackMessage = "No fortunes found"

// Renderer writes selector output to a body writer and a header writer.
type Renderer struct {
	body    io.Writer
	headers io.Writer
	color   bool
}

// NewRenderer creates a Renderer. colorMode is one of "auto", "always"
// or "never"; in auto mode headers are colorized only when the header
// writer is a terminal.
func NewRenderer(body, headers io.Writer, colorMode string) *Renderer {
	return &Renderer{
		body:    body,
		headers: headers,
		color:   useColor(headers, colorMode),
	}
}

// useColor decides whether header colorization is enabled. Auto mode
// respects NO_COLOR via the color library's global detection.
func useColor(w io.Writer, colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()) && !color.NoColor
	}
}

// RenderMatches prints every matched fortune as "text" followed by a
// "%" line, emitting a "(source)" header each time a contiguous run of
// same-source matches begins. No matches produce no output.
func (r *Renderer) RenderMatches(matches []models.Fortune) {
	prevSource := ""
	for _, m := range matches {
		if m.Source != prevSource {
			fmt.Fprintln(r.headers, r.headerLabel(m.Source))
			prevSource = m.Source
		}
		fmt.Fprintf(r.body, "%s\n%%\n", m.Text)
	}
}

// RenderPick prints the chosen fortune, or the fallback message when
// the selector had nothing to pick from.
func (r *Renderer) RenderPick(fortune models.Fortune, ok bool) {
	if !ok {
		fmt.Fprintln(r.body, FallbackMessage)
		return
	}
	fmt.Fprintln(r.body, fortune.Text)
}

// headerLabel formats a source header, in yellow when color is enabled.
func (r *Renderer) headerLabel(source string) string {
	if r.color {
		c := color.New(color.FgYellow)
		// EnableColor overrides the global TTY detection so that
		// "always" works when output is piped.
		c.EnableColor()
		return c.Sprintf("(%s)", source)
	}
	return fmt.Sprintf("(%s)", source)
}
