package state

// Pane identifies one of the demo editors.
type Pane int

const (
	ControlledPane Pane = iota
	UncontrolledPane
	CustomToolbarPane

	PaneCount = 3
)

func (p Pane) Title() string {
	switch p {
	case ControlledPane:
		return "Controlled Mode"
	case UncontrolledPane:
		return "Uncontrolled Mode"
	case CustomToolbarPane:
		return "Custom Toolbar"
	default:
		return ""
	}
}

// PreviewMode controls what the preview panel shows.
type PreviewMode int

const (
	Rendered PreviewMode = iota
	Markup
	Changes
)

func (p PreviewMode) String() string {
	switch p {
	case Markup:
		return "Markup"
	case Changes:
		return "Changes"
	default:
		return "Rendered"
	}
}

// UIState holds cross-widget UI state used by the status bar, preview and
// help overlay.
type UIState struct {
	// Focus & view
	Pane        Pane
	Preview     PreviewMode
	ShowPreview bool
	ShowHelp    bool

	// Layout
	Width           int
	Height          int
	MinPreviewWidth int // preview is hidden below this width

	// Pending async work on the controlled document
	Loading bool
	Saving  bool

	// Notices and ephemeral messages
	Notice string
}
