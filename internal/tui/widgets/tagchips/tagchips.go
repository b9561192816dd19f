package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rtedit/internal/tui/state"
	"rtedit/internal/tui/util"
)

// View renders document tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)

	pal := util.DefaultPalette()
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor, pal))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool, pal util.Palette) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t, pal).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.CONTROLLED:
		return "Controlled"
	case state.UNCONTROLLED:
		return "Uncontrolled"
	case state.EDITED:
		return "Edited"
	case state.LOADING:
		return "Loading"
	case state.SAVING:
		return "Saving"
	case state.CHARS:
		return fmt.Sprintf("Chars %d", t.Value)
	case state.WORDS:
		return fmt.Sprintf("Words %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag, pal util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(pal.OnColor)
	switch t.Kind {
	case state.CONTROLLED:
		return base.Background(pal.Primary)
	case state.UNCONTROLLED:
		return base.Background(pal.Accent)
	case state.EDITED:
		return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
	case state.LOADING, state.SAVING:
		return base.Background(pal.Success)
	case state.CHARS:
		return base.Background(pal.Muted)
	case state.WORDS:
		return base.Background(pal.MutedDark)
	default:
		return base
	}
}
