package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"rtedit/internal/tui/state"
)

// Section is a titled group of bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

type HelpOverlay struct {
	sections []Section
}

func NewHelpOverlay(sections ...Section) HelpOverlay { return HelpOverlay{sections: sections} }

// View returns grouped keys help with the active pane indicated. Disabled
// bindings are left out.
func (h HelpOverlay) View(s state.UIState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Pane: %s)\n", s.Pane.Title())
	for _, sec := range h.sections {
		var lines []string
		for _, k := range sec.Bindings {
			if !k.Enabled() {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", k.Help().Key, k.Help().Desc))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
	}
	return b.String()
}
