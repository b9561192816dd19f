package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint    = lipgloss.NewStyle().Faint(true)
	tagStyle = lipgloss.NewStyle().Bold(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the changes from saved to current as a unified diff with
// line- and char-level highlights.
func (DiffView) View(saved, current string) string {
	if saved == current {
		return "No changes since last save\n"
	}
	// If line counts match, do per-line char highlight; otherwise show blocks.
	bLines := strings.Split(saved, "\n")
	aLines := strings.Split(current, "\n")
	var sb strings.Builder
	if len(bLines) != len(aLines) {
		sb.WriteString(tagStyle.Render("SAVED") + "\n")
		for _, l := range bLines {
			sb.WriteString(delLine.Render("- ") + l + "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(tagStyle.Render("CURRENT") + "\n")
		for _, l := range aLines {
			sb.WriteString(addLine.Render("+ ") + l + "\n")
		}
		return sb.String()
	}
	d := dmp.New()
	for i := range bLines {
		bl, al := bLines[i], aLines[i]
		if bl == al {
			if strings.TrimSpace(bl) == "" {
				continue
			}
			sb.WriteString("  " + faint.Render(bl) + "\n")
			continue
		}
		diffs := d.DiffCleanupSemantic(d.DiffMain(bl, al, false))
		sb.WriteString(delLine.Render("- "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(delChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(delLine.Render(df.Text))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(addLine.Render("+ "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffInsert:
				sb.WriteString(addChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(addLine.Render(df.Text))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
