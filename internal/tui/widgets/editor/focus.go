package editor

// focusTarget is the editing surface as the coordinator sees it.
type focusTarget interface {
	Focus()
	Blur()
	Focused() bool
}

// focusCoordinator returns input focus to the editing surface. Until the
// surface is mounted, and after it is unmounted, every call is a no-op.
type focusCoordinator struct {
	target focusTarget
}

func (f *focusCoordinator) mount(t focusTarget) { f.target = t }

func (f *focusCoordinator) unmount() {
	if f.target != nil {
		f.target.Blur()
	}
	f.target = nil
}

func (f *focusCoordinator) focusEditingSurface() {
	if f.target == nil {
		return
	}
	f.target.Focus()
}

func (f *focusCoordinator) blur() {
	if f.target == nil {
		return
	}
	f.target.Blur()
}

func (f *focusCoordinator) focused() bool {
	return f.target != nil && f.target.Focused()
}
