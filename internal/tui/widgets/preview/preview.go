// Package preview turns documents into something a reader can look at:
// Markdown and HTML markup, and a terminal rendering of the Markdown.
package preview

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"rtedit/internal/richtext"
)

// Renderer renders documents to styled terminal text. Results are cached per
// document revision, so calling Render on every frame is cheap.
type Renderer struct {
	style string
	width int
	tr    *glamour.TermRenderer

	last    *richtext.State
	lastOut string
}

// NewRenderer returns a renderer for the given glamour style ("auto", "dark",
// "light", "notty", ...) wrapping at width columns (0 disables wrapping).
func NewRenderer(style string, width int) (*Renderer, error) {
	r := &Renderer{style: style}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	return r, nil
}

// SetWidth rebuilds the underlying renderer when the width changes.
func (r *Renderer) SetWidth(width int) error {
	if r.tr != nil && width == r.width {
		return nil
	}
	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == "" || r.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return fmt.Errorf("preview renderer: %w", err)
	}
	r.tr, r.width = tr, width
	r.last, r.lastOut = nil, ""
	return nil
}

// Render returns the terminal rendering of st.
func (r *Renderer) Render(st *richtext.State) (string, error) {
	if st != nil && st == r.last {
		return r.lastOut, nil
	}
	out, err := r.tr.Render(Markdown(st))
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	r.last, r.lastOut = st, out
	return out, nil
}
