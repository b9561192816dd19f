// Package editor is a rich-text editing widget for Bubble Tea.
//
// An editor runs in one of two modes, fixed at construction. Uncontrolled
// editors own their document. Controlled editors hand every new document to
// Options.OnChange and show whatever the host last passed to SetValue. Either
// way the toolbar, the editing surface and async loads all write through the
// same path, so the rest of the widget never needs to know which mode it is
// in.
package editor

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rtedit/internal/richtext"
)

const DefaultPlaceholder = "Start typing here..."

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// Options configures an editor. Value and OnChange must be supplied together
// (Controlled) or not at all (Uncontrolled).
type Options struct {
	Value    *richtext.State
	OnChange func(*richtext.State)

	// Class is an opaque presentation hint for the host. Style is applied on
	// top of the default container style.
	Class string
	Style lipgloss.Style

	RenderToolbar ToolbarFunc

	Placeholder string
	KeyMap      *KeyMap
	Styles      *Styles
}

// Model is the editor widget. Use New to create one.
type Model struct {
	id      int
	src     source
	class   string
	toolbar ToolbarFunc
	keys    KeyMap
	styles  Styles
	width   int

	surface *surface
	focus   focusCoordinator

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New validates opts and returns an editor. A partial controlled setup fails
// with a *ConfigError wrapping ErrPartialControl.
func New(opts Options) (*Model, error) {
	src, err := resolveSource(opts.Value, opts.OnChange)
	if err != nil {
		return nil, err
	}
	m := &Model{
		id:      nextID(),
		src:     src,
		class:   opts.Class,
		toolbar: opts.RenderToolbar,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		surface: &surface{placeholder: opts.Placeholder},
	}
	if opts.KeyMap != nil {
		m.keys = *opts.KeyMap
	}
	if opts.Styles != nil {
		m.styles = *opts.Styles
	}
	if m.surface.placeholder == "" {
		m.surface.placeholder = DefaultPlaceholder
	}
	m.styles.Container = opts.Style.Inherit(m.styles.Container)
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m, nil
}

func (m *Model) ID() int        { return m.id }
func (m *Model) Mode() Mode     { return m.src.mode() }
func (m *Model) Class() string  { return m.class }
func (m *Model) KeyMap() KeyMap { return m.keys }

// State returns the authoritative document.
func (m *Model) State() *richtext.State { return m.src.current() }

// SetValue passes the host's current document to a Controlled editor. It is
// ignored by Uncontrolled editors and for nil values.
func (m *Model) SetValue(s *richtext.State) {
	c, ok := m.src.(*controlled)
	if !ok || s == nil {
		return
	}
	c.receive(s)
}

func (m *Model) SetWidth(w int) { m.width = max(w, 0) }

// Init mounts the editing surface and gives it focus.
func (m *Model) Init() tea.Cmd {
	if m.closed {
		return nil
	}
	m.focus.mount(m.surface)
	m.focus.focusEditingSurface()
	return nil
}

// Focus returns input focus to the editing surface. It does nothing before
// Init or after Close.
func (m *Model) Focus() { m.focus.focusEditingSurface() }

func (m *Model) Blur() { m.focus.blur() }

func (m *Model) Focused() bool { return m.focus.focused() }

// Close tears the editor down. Pending loads are cancelled and any result
// that still arrives is dropped.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.cancel()
	m.focus.unmount()
}

func (m *Model) Closed() bool { return m.closed }

// request is the only writer of document state.
func (m *Model) request(next *richtext.State) {
	if m.closed || next == nil {
		return
	}
	m.src.request(next)
}

// ToggleStyle focuses the surface, then flips style at the selection.
func (m *Model) ToggleStyle(style richtext.Style) {
	m.Focus()
	m.request(richtext.ToggleInlineStyle(m.State(), style))
}

// Press activates the toolbar button with the given label, as a click would.
func (m *Model) Press(label string) bool {
	b, ok := m.renderToolbar().find(func(b Button) bool { return b.Label == label })
	if !ok {
		return false
	}
	m.press(b)
	return true
}

func (m *Model) press(b Button) {
	if m.closed {
		return
	}
	m.Focus()
	if b.Press != nil {
		b.Press()
	}
}

// Toolbar returns the toolbar for the current state.
func (m *Model) Toolbar() Toolbar { return m.renderToolbar() }

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	switch msg := msg.(type) {
	case LoadedMsg:
		if msg.id != m.id || msg.Err != nil {
			return m, nil
		}
		m.Focus()
		m.request(msg.State)
	case tea.KeyMsg:
		if b, ok := m.renderToolbar().find(func(b Button) bool { return key.Matches(msg, b.Key) }); ok {
			m.press(b)
			return m, nil
		}
		if next, ok := m.surface.handleKey(m.State(), msg, m.keys); ok {
			m.request(next)
		}
	}
	return m, nil
}

func (m *Model) View() string {
	tb := m.renderToolbar().View(m.styles.Toolbar)
	body := m.surface.view(m.State(), m.styles)
	container := m.styles.Container
	if m.width > 0 {
		container = container.Width(max(m.width-container.GetHorizontalBorderSize(), 1))
	}
	return container.Render(renderBody(tb, body))
}
