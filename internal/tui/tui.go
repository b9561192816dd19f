// Package tui is the interactive demo: three editors showing controlled
// state, uncontrolled state and a host-supplied toolbar side by side.
package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rtedit/internal/config"
	"rtedit/internal/fakeapi"
	"rtedit/internal/richtext"
	"rtedit/internal/tui/state"
	"rtedit/internal/tui/util"
	"rtedit/internal/tui/widgets/diff"
	"rtedit/internal/tui/widgets/editor"
	"rtedit/internal/tui/widgets/helpoverlay"
	"rtedit/internal/tui/widgets/preview"
	"rtedit/internal/tui/widgets/statusbar"
	"rtedit/internal/tui/widgets/tagchips"
)

// minPreviewWidth is the narrowest terminal that still shows the preview.
const minPreviewWidth = 40

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Deps are the collaborators of the demo. Zero fields get real defaults.
type Deps struct {
	API       *fakeapi.Client
	Clipboard Clipboard
	Logger    *log.Logger
}

// Run starts the demo and blocks until the user quits.
func Run(cfg *config.Config, deps Deps) error {
	m, err := New(cfg, deps)
	if err != nil {
		return err
	}
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// ===== Model =====

type Model struct {
	cfg     *config.Config
	api     *fakeapi.Client
	clip    Clipboard
	logger  *log.Logger
	noColor bool

	// doc is the controlled pane's document. The app owns it.
	doc   *richtext.State
	saved [state.PaneCount]string

	editors [state.PaneCount]*editor.Model
	ui      state.UIState
	keys    keyMap

	spinner  spinner.Model
	help     help.Model
	renderer *preview.Renderer
	status   statusbar.StatusBar
	overlay  helpoverlay.HelpOverlay
	diff     diff.DiffView
}

func New(cfg *config.Config, deps Deps) (*Model, error) {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.API == nil {
		deps.API = fakeapi.New(fakeapi.Options{
			Content:   cfg.SampleContent,
			LoadDelay: cfg.LoadDelay,
			SaveDelay: cfg.SaveDelay,
			Logger:    deps.Logger,
		})
	}
	if deps.Clipboard == nil {
		deps.Clipboard = systemClipboard{}
	}
	m := &Model{
		cfg:     cfg,
		api:     deps.API,
		clip:    deps.Clipboard,
		logger:  deps.Logger,
		noColor: util.NoColor(cfg.NoColor),
		doc:     richtext.CreateEmpty(),
		ui:      state.UIState{ShowPreview: true, MinPreviewWidth: minPreviewWidth},
		keys:    defaultKeyMap(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		status:  statusbar.NewStatusBar(),
		diff:    diff.NewDiffView(),
	}

	style := cfg.PreviewStyle
	if m.noColor {
		style = "notty"
	}
	r, err := preview.NewRenderer(style, 0)
	if err != nil {
		return nil, err
	}
	m.renderer = r

	opts := [state.PaneCount]editor.Options{
		state.ControlledPane: {
			Value:    m.doc,
			OnChange: func(next *richtext.State) { m.doc = next },
			Class:    "controlled-editor",
		},
		state.UncontrolledPane: {
			Class: "uncontrolled-editor",
		},
		state.CustomToolbarPane: {
			Class:         "custom-toolbar-editor",
			Style:         lipgloss.NewStyle().BorderForeground(lipgloss.Color("#8B5CF6")),
			RenderToolbar: m.customToolbar,
		},
	}
	for i := range opts {
		opts[i].Placeholder = cfg.Placeholder
		ed, err := editor.New(opts[i])
		if err != nil {
			return nil, fmt.Errorf("create %s editor: %w", state.Pane(i).Title(), err)
		}
		m.editors[i] = ed
	}

	sections := []helpoverlay.Section{
		{Title: "Panes", Bindings: []key.Binding{m.keys.Next, m.keys.Prev}},
		{Title: "Document", Bindings: []key.Binding{m.keys.Load, m.keys.Save, m.keys.Copy}},
		{Title: "Preview", Bindings: []key.Binding{m.keys.Preview, m.keys.PreviewMode}},
	}
	ek := m.editors[state.ControlledPane].KeyMap()
	sections = append(sections,
		helpoverlay.Section{Title: "Formatting", Bindings: []key.Binding{ek.Bold, ek.Italic, ek.Underline}},
		helpoverlay.Section{Title: "Custom toolbar", Bindings: m.customBindings()},
		helpoverlay.Section{Title: "General", Bindings: []key.Binding{m.keys.Help, m.keys.Quit}},
	)
	m.overlay = helpoverlay.NewHelpOverlay(sections...)
	return m, nil
}

// customToolbar renders the configured style buttons with a title. It only
// talks to the editor through props.
func (m *Model) customToolbar(props editor.ToolbarProps) editor.Toolbar {
	styles := m.cfg.ToolbarStyles()
	buttons := make([]editor.Button, 0, len(styles))
	for _, s := range styles {
		buttons = append(buttons, editor.StyleButton(props, customToolbarLabels[s], s, customToolbarKeys[s]))
	}
	return editor.Toolbar{Title: "Custom Toolbar", Buttons: buttons}
}

func (m *Model) customBindings() []key.Binding {
	var out []key.Binding
	for _, s := range m.cfg.ToolbarStyles() {
		out = append(out, customToolbarKeys[s])
	}
	return out
}

func (m *Model) active() *editor.Model { return m.editors[m.ui.Pane] }

// sync hands the app-owned document back to the controlled editor.
func (m *Model) sync() { m.editors[state.ControlledPane].SetValue(m.doc) }

func (m *Model) Init() tea.Cmd {
	for _, ed := range m.editors {
		ed.Init()
	}
	m.focusPane(m.ui.Pane)
	return nil
}

func (m *Model) focusPane(p state.Pane) {
	for i, ed := range m.editors {
		if state.Pane(i) == p {
			ed.Focus()
		} else {
			ed.Blur()
		}
	}
}

// Close tears down every editor. Loads still in flight are dropped.
func (m *Model) Close() {
	for _, ed := range m.editors {
		ed.Close()
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		for _, ed := range m.editors {
			ed.SetWidth(msg.Width)
		}
		m.help.Width = msg.Width
		if err := m.renderer.SetWidth(max(msg.Width-4, 0)); err != nil {
			m.logger.Printf("preview: %v", err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ui.Loading && !m.ui.Saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case editor.LoadedMsg:
		m.ui = state.EndLoad(m.ui, msg.Err)
		if msg.Err != nil {
			m.logger.Printf("load failed: %v", msg.Err)
		}
		for _, ed := range m.editors {
			ed.Update(msg)
		}
		m.sync()
		// The loading editor grabs focus; only the active pane keeps it.
		m.focusPane(m.ui.Pane)
		return m, nil

	case editor.SavedMsg:
		m.ui = state.EndSave(m.ui, msg.Err)
		if msg.Err != nil {
			m.logger.Printf("save failed: %v", msg.Err)
			return m, nil
		}
		for i, ed := range m.editors {
			if msg.For(ed) {
				m.saved[i] = msg.Text
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ui.ShowHelp {
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc {
			m.ui = state.ToggleHelp(m.ui)
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.ui = state.FocusNext(m.ui)
		m.focusPane(m.ui.Pane)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.ui = state.FocusPrev(m.ui)
		m.focusPane(m.ui.Pane)
		return m, nil
	case key.Matches(msg, m.keys.Preview):
		m.ui = state.TogglePreview(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.PreviewMode):
		m.ui = state.CyclePreview(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Load):
		if m.ui.Loading {
			m.ui = state.SetNotice(m.ui, "Load already in progress")
			return m, nil
		}
		cmd := m.active().Load(m.api.Fetch)
		if cmd == nil {
			return m, nil
		}
		tick := m.startSpinner()
		m.ui = state.BeginLoad(m.ui)
		m.logger.Printf("loading content into %s", m.ui.Pane.Title())
		return m, tea.Batch(cmd, tick)
	case key.Matches(msg, m.keys.Save):
		if m.ui.Saving {
			m.ui = state.SetNotice(m.ui, "Save already in progress")
			return m, nil
		}
		cmd := m.active().Save(m.api.Submit)
		if cmd == nil {
			return m, nil
		}
		tick := m.startSpinner()
		m.ui = state.BeginSave(m.ui)
		m.logger.Printf("saving %s", m.ui.Pane.Title())
		return m, tea.Batch(cmd, tick)
	case key.Matches(msg, m.keys.Copy):
		text := m.active().State().PlainText()
		if err := m.clip.WriteAll(text); err != nil {
			m.logger.Printf("clipboard: %v", err)
			m.ui = state.SetNotice(m.ui, fmt.Sprintf("Copy failed: %v", err))
			return m, nil
		}
		m.ui = state.SetNotice(m.ui, fmt.Sprintf("Copied %d chars", len([]rune(text))))
		return m, nil
	}

	_, cmd := m.active().Update(msg)
	m.sync()
	return m, cmd
}

// startSpinner returns the first tick when nothing is pending yet. A running
// spinner keeps its own tick chain.
func (m *Model) startSpinner() tea.Cmd {
	if m.ui.Loading || m.ui.Saving {
		return nil
	}
	return m.spinner.Tick
}

// ===== View =====

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	paneStyle   = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3D6DFF"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

func (m *Model) View() string {
	if m.ui.ShowHelp {
		return m.overlay.View(m.ui)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Rich Text Editor Demo"))
	b.WriteString("\n")
	for i, ed := range m.editors {
		header := paneStyle.Render("  " + state.Pane(i).Title())
		if state.Pane(i) == m.ui.Pane {
			header = activeStyle.Render("▸ " + state.Pane(i).Title())
		}
		b.WriteString(header + "\n")
		b.WriteString(ed.View() + "\n")
	}
	if m.ui.ShowPreview {
		b.WriteString(m.previewView() + "\n")
	}

	ed := m.active()
	chips := tagchips.View(util.ComputeTags(util.DocStatus{
		Controlled: ed.Mode() == editor.Controlled,
		Text:       ed.State().PlainText(),
		Saved:      m.saved[m.ui.Pane],
		Loading:    m.ui.Loading,
		Saving:     m.ui.Saving,
	}), m.noColor)
	if m.ui.Loading || m.ui.Saving {
		chips = m.spinner.View() + " " + chips
	}
	b.WriteString(chips + "\n")
	b.WriteString(m.status.View(m.ui, ed.Mode().String(), ed.State()) + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) previewView() string {
	ed := m.active()
	var body string
	switch m.ui.Preview {
	case state.Markup:
		body = "Markdown:\n" + preview.Markdown(ed.State()) + "\n\nHTML:\n" + preview.HTML(ed.State())
	case state.Changes:
		body = m.diff.View(m.saved[m.ui.Pane], ed.State().PlainText())
	default:
		out, err := m.renderer.Render(ed.State())
		if err != nil {
			body = fmt.Sprintf("preview unavailable: %v", err)
		} else {
			body = strings.Trim(out, "\n")
		}
	}
	title := fmt.Sprintf("Preview (%s)", m.ui.Preview)
	return panelStyle.Render(title + "\n" + strings.TrimRight(body, "\n"))
}
