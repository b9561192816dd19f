package statusbar

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"rtedit/internal/richtext"
	"rtedit/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line for the active pane and document. The
// line is cut or padded to s.Width when a width is known.
func (StatusBar) View(s state.UIState, mode string, doc *richtext.State) string {
	styles := doc.CurrentInlineStyle().String()
	if styles == "" {
		styles = "plain"
	}
	pos := doc.Position(doc.Selection().Focus)
	parts := []string{
		fmt.Sprintf("[%s]", s.Pane.Title()),
		mode,
		"Style: " + styles,
		fmt.Sprintf("Ln %d, Col %d", pos.Line+1, pos.Col+1),
	}
	if !doc.Selection().IsCollapsed() {
		sel := doc.Selection()
		parts = append(parts, fmt.Sprintf("Sel %d", sel.End()-sel.Start()))
	}
	if s.ShowPreview {
		parts = append(parts, "Preview: "+s.Preview.String())
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	line := strings.Join(parts, "  ")
	if s.Width <= 0 {
		return line
	}
	line = runewidth.Truncate(line, s.Width, "…")
	return runewidth.FillRight(line, s.Width)
}
