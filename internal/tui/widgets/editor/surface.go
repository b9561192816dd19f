package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rtedit/internal/richtext"
)

// lineEnd is a column past the end of any line; Offset clamps it.
const lineEnd = int(^uint(0) >> 2)

// surface is the editable text area. It turns key presses into new document
// states but never stores one; the caller routes its output to the arbiter.
type surface struct {
	focused     bool
	placeholder string
}

func (s *surface) Focus()        { s.focused = true }
func (s *surface) Blur()         { s.focused = false }
func (s *surface) Focused() bool { return s.focused }

// handleKey returns the state that results from msg, or false when the key
// is not an edit or the surface does not have focus.
func (s *surface) handleKey(st *richtext.State, msg tea.KeyMsg, km KeyMap) (*richtext.State, bool) {
	if !s.focused {
		return nil, false
	}
	switch {
	case key.Matches(msg, km.Left):
		return richtext.Move(st, -1, false), true
	case key.Matches(msg, km.Right):
		return richtext.Move(st, 1, false), true
	case key.Matches(msg, km.ShiftLeft):
		return richtext.Move(st, -1, true), true
	case key.Matches(msg, km.ShiftRight):
		return richtext.Move(st, 1, true), true
	case key.Matches(msg, km.Up):
		return moveVertical(st, -1, false), true
	case key.Matches(msg, km.Down):
		return moveVertical(st, 1, false), true
	case key.Matches(msg, km.ShiftUp):
		return moveVertical(st, -1, true), true
	case key.Matches(msg, km.ShiftDown):
		return moveVertical(st, 1, true), true
	case key.Matches(msg, km.Home):
		p := st.Position(st.Selection().Focus)
		return richtext.MoveTo(st, st.Offset(richtext.Position{Line: p.Line}), false), true
	case key.Matches(msg, km.End):
		p := st.Position(st.Selection().Focus)
		return richtext.MoveTo(st, st.Offset(richtext.Position{Line: p.Line, Col: lineEnd}), false), true
	case key.Matches(msg, km.SelectAll):
		return richtext.SelectAll(st), true
	case key.Matches(msg, km.Backspace):
		return richtext.DeleteBackward(st), true
	case key.Matches(msg, km.Delete):
		return richtext.DeleteForward(st), true
	case key.Matches(msg, km.Enter):
		return richtext.InsertText(st, "\n"), true
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil, false
		}
		return richtext.InsertText(st, string(msg.Runes)), true
	case tea.KeySpace:
		return richtext.InsertText(st, " "), true
	}
	return nil, false
}

func moveVertical(st *richtext.State, lines int, extend bool) *richtext.State {
	p := st.Position(st.Selection().Focus)
	p.Line += lines
	if p.Line < 0 {
		return richtext.MoveTo(st, 0, extend)
	}
	return richtext.MoveTo(st, st.Offset(p), extend)
}

// segment is a stretch of characters rendered with one style.
type segment struct {
	styles   richtext.StyleSet
	selected bool
}

func (s *surface) view(st *richtext.State, styles Styles) string {
	if st.Len() == 0 {
		ph := styles.Placeholder.Render(s.placeholder)
		if s.focused {
			return styles.Cursor.Render(" ") + ph
		}
		return ph
	}

	sel := st.Selection()
	var (
		b    strings.Builder
		buf  strings.Builder
		cur  segment
		open bool
	)
	flush := func() {
		if !open {
			return
		}
		style := styles.inline(cur.styles)
		if cur.selected {
			style = style.Inherit(styles.Selection)
		}
		b.WriteString(style.Render(buf.String()))
		buf.Reset()
		open = false
	}
	caret := func(r rune) {
		flush()
		if r == 0 || r == '\n' {
			b.WriteString(styles.Cursor.Render(" "))
			if r == '\n' {
				b.WriteByte('\n')
			}
			return
		}
		b.WriteString(styles.Cursor.Inherit(styles.inline(st.StyleAt(sel.Focus))).Render(string(r)))
	}

	for i := 0; i < st.Len(); i++ {
		r := st.RuneAt(i)
		if s.focused && i == sel.Focus {
			caret(r)
			continue
		}
		if r == '\n' {
			flush()
			b.WriteByte('\n')
			continue
		}
		seg := segment{styles: st.StyleAt(i), selected: sel.Contains(i)}
		if open && (seg.selected != cur.selected || !seg.styles.Equal(cur.styles)) {
			flush()
		}
		cur = seg
		open = true
		buf.WriteRune(r)
	}
	if s.focused && sel.Focus == st.Len() {
		caret(0)
	}
	flush()
	return b.String()
}

// renderBody lays the surface out below the toolbar.
func renderBody(toolbar, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, toolbar, body)
}
