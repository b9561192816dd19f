package editor

import (
	"github.com/charmbracelet/lipgloss"

	"rtedit/internal/richtext"
)

// Styles controls how the editor renders itself.
type Styles struct {
	Container   lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Code        lipgloss.Style
	Toolbar     ToolbarStyles
}

func DefaultStyles() Styles {
	return Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"}),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Code:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}),
		Toolbar:     DefaultToolbarStyles(),
	}
}

// inline maps a style set onto terminal attributes. Tokens without a
// terminal rendering are skipped.
func (s Styles) inline(set richtext.StyleSet) lipgloss.Style {
	out := s.Text
	for _, st := range set.Slice() {
		switch st {
		case richtext.Bold:
			out = out.Bold(true)
		case richtext.Italic:
			out = out.Italic(true)
		case richtext.Underline:
			out = out.Underline(true)
		case richtext.Strikethrough:
			out = out.Strikethrough(true)
		case richtext.Code:
			out = out.Inherit(s.Code)
		}
	}
	return out
}
