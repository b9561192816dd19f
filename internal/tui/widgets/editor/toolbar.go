package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"rtedit/internal/richtext"
)

// ToolbarProps is everything a toolbar gets to see. SetEditorState routes
// through the editor's arbiter exactly like an edit typed into the surface.
type ToolbarProps struct {
	EditorState    *richtext.State
	SetEditorState func(*richtext.State)
}

// ToolbarFunc renders a toolbar for the current state. It is called on every
// render and key dispatch, so it must not keep the state it is given.
type ToolbarFunc func(ToolbarProps) Toolbar

// Button is one toolbar action.
type Button struct {
	Label  string
	Key    key.Binding
	Active bool
	Press  func()
}

// Toolbar is the presentation output of a ToolbarFunc.
type Toolbar struct {
	Title   string
	Buttons []Button
	// Styles overrides the editor's toolbar styles when set.
	Styles *ToolbarStyles
}

type ToolbarStyles struct {
	Bar    lipgloss.Style
	Title  lipgloss.Style
	Button lipgloss.Style
	Active lipgloss.Style
}

func DefaultToolbarStyles() ToolbarStyles {
	return ToolbarStyles{
		Bar:    lipgloss.NewStyle().Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true),
		Button: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"}),
		Active: lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3D6DFF")),
	}
}

// StyleButton builds a button that toggles style through props, the way a
// host-supplied toolbar does it.
func StyleButton(props ToolbarProps, label string, style richtext.Style, k key.Binding) Button {
	return Button{
		Label:  label,
		Key:    k,
		Active: props.EditorState.CurrentInlineStyle().Has(style),
		Press: func() {
			props.SetEditorState(richtext.ToggleInlineStyle(props.EditorState, style))
		},
	}
}

// View renders the toolbar on one line, falling back to def for styling.
func (t Toolbar) View(def ToolbarStyles) string {
	st := def
	if t.Styles != nil {
		st = *t.Styles
	}
	parts := make([]string, 0, len(t.Buttons)+1)
	if t.Title != "" {
		parts = append(parts, st.Title.Render(t.Title))
	}
	for _, b := range t.Buttons {
		if b.Active {
			parts = append(parts, st.Active.Render(b.Label))
		} else {
			parts = append(parts, st.Button.Render(b.Label))
		}
	}
	return st.Bar.Render(strings.Join(parts, " "))
}

// find returns the first button match accepts.
func (t Toolbar) find(match func(Button) bool) (Button, bool) {
	for _, b := range t.Buttons {
		if match(b) {
			return b, true
		}
	}
	return Button{}, false
}

func (m *Model) defaultToolbar(props ToolbarProps) Toolbar {
	cur := props.EditorState.CurrentInlineStyle()
	button := func(label string, style richtext.Style, k key.Binding) Button {
		return Button{
			Label:  label,
			Key:    k,
			Active: cur.Has(style),
			Press:  func() { m.ToggleStyle(style) },
		}
	}
	return Toolbar{Buttons: []Button{
		button("Bold", richtext.Bold, m.keys.Bold),
		button("Italic", richtext.Italic, m.keys.Italic),
		button("Underline", richtext.Underline, m.keys.Underline),
	}}
}

func (m *Model) renderToolbar() Toolbar {
	props := ToolbarProps{EditorState: m.State(), SetEditorState: m.request}
	if m.toolbar != nil {
		return m.toolbar(props)
	}
	return m.defaultToolbar(props)
}
