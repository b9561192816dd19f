package state

import "fmt"

// FocusNext moves to the next pane, wrapping around.
func FocusNext(s UIState) UIState {
	s.Pane = (s.Pane + 1) % PaneCount
	return s
}

// FocusPrev moves to the previous pane, wrapping around.
func FocusPrev(s UIState) UIState {
	s.Pane = (s.Pane + PaneCount - 1) % PaneCount
	return s
}

// TogglePreview shows or hides the preview panel.
func TogglePreview(s UIState) UIState {
	s.ShowPreview = !s.ShowPreview
	if s.ShowPreview && s.MinPreviewWidth > 0 && s.Width > 0 && s.Width < s.MinPreviewWidth {
		s.ShowPreview = false
		s.Notice = "Narrow width: preview hidden"
	}
	return s
}

// CyclePreview switches Rendered -> Markup -> Changes -> Rendered.
func CyclePreview(s UIState) UIState {
	s.Preview = (s.Preview + 1) % 3
	s.Notice = "Preview: " + s.Preview.String()
	return s
}

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// Resize updates the layout and hides the preview when it no longer fits.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	if s.ShowPreview && s.MinPreviewWidth > 0 && s.Width < s.MinPreviewWidth {
		s.ShowPreview = false
		s.Notice = "Narrow width: preview hidden"
	}
	return s
}

// BeginLoad marks an async load as pending. A second load while one is
// pending is allowed; the latest result wins.
func BeginLoad(s UIState) UIState {
	s.Loading = true
	s.Notice = "Loading content…"
	return s
}

// EndLoad clears the pending load and reports the outcome.
func EndLoad(s UIState, err error) UIState {
	s.Loading = false
	if err != nil {
		s.Notice = fmt.Sprintf("Load failed: %v", err)
		return s
	}
	s.Notice = "Content loaded"
	return s
}

// BeginSave marks an async save as pending.
func BeginSave(s UIState) UIState {
	s.Saving = true
	s.Notice = "Saving…"
	return s
}

// EndSave clears the pending save and reports the outcome.
func EndSave(s UIState, err error) UIState {
	s.Saving = false
	if err != nil {
		s.Notice = fmt.Sprintf("Save failed: %v", err)
		return s
	}
	s.Notice = "Content saved successfully!"
	return s
}

// SetNotice replaces the ephemeral notice.
func SetNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}
