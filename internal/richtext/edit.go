package richtext

// ToggleInlineStyle flips style at the selection and returns the new state.
// On a collapsed cursor only the pending override changes; on a range the
// style is removed from every selected character when the current inline
// style has it, and added to all of them otherwise. Text and other styles are
// left alone.
func ToggleInlineStyle(s *State, style Style) *State {
	if s == nil {
		s = CreateEmpty()
	}
	cur := s.CurrentInlineStyle()
	if s.sel.IsCollapsed() {
		next := cur.Toggle(style)
		return &State{chars: s.chars, sel: s.sel, override: &next}
	}
	remove := cur.Has(style)
	chars := make([]char, len(s.chars))
	copy(chars, s.chars)
	for i := s.sel.Start(); i < s.sel.End(); i++ {
		if remove {
			chars[i].styles = chars[i].styles.Remove(style)
		} else {
			chars[i].styles = chars[i].styles.Add(style)
		}
	}
	return &State{chars: chars, sel: s.sel}
}

// InsertText replaces the selection with text, styled with the current
// inline style, and leaves the caret after the inserted text.
func InsertText(s *State, text string) *State {
	if s == nil {
		s = CreateEmpty()
	}
	rs := []rune(text)
	if len(rs) == 0 && s.sel.IsCollapsed() {
		return s
	}
	styles := s.CurrentInlineStyle()
	start, end := s.sel.Start(), s.sel.End()
	chars := make([]char, 0, len(s.chars)-(end-start)+len(rs))
	chars = append(chars, s.chars[:start]...)
	for _, r := range rs {
		chars = append(chars, char{r: r, styles: styles})
	}
	chars = append(chars, s.chars[end:]...)
	return &State{chars: chars, sel: Collapsed(start + len(rs))}
}

// DeleteBackward removes the selection, or the character before the caret.
func DeleteBackward(s *State) *State {
	if s == nil {
		return CreateEmpty()
	}
	if !s.sel.IsCollapsed() {
		return deleteRange(s, s.sel.Start(), s.sel.End())
	}
	if s.sel.Focus == 0 {
		return s
	}
	return deleteRange(s, s.sel.Focus-1, s.sel.Focus)
}

// DeleteForward removes the selection, or the character after the caret.
func DeleteForward(s *State) *State {
	if s == nil {
		return CreateEmpty()
	}
	if !s.sel.IsCollapsed() {
		return deleteRange(s, s.sel.Start(), s.sel.End())
	}
	if s.sel.Focus >= len(s.chars) {
		return s
	}
	return deleteRange(s, s.sel.Focus, s.sel.Focus+1)
}

func deleteRange(s *State, start, end int) *State {
	chars := make([]char, 0, len(s.chars)-(end-start))
	chars = append(chars, s.chars[:start]...)
	chars = append(chars, s.chars[end:]...)
	return &State{chars: chars, sel: Collapsed(start)}
}

// Move shifts the caret by delta runes. With extend the anchor stays put and
// the selection grows; without it a range collapses toward the movement.
func Move(s *State, delta int, extend bool) *State {
	if s == nil {
		s = CreateEmpty()
	}
	if !extend && !s.sel.IsCollapsed() && delta != 0 {
		if delta < 0 {
			return MoveTo(s, s.sel.Start(), false)
		}
		return MoveTo(s, s.sel.End(), false)
	}
	return MoveTo(s, s.sel.Focus+delta, extend)
}

// MoveTo places the caret at offset, clamped to the document.
func MoveTo(s *State, offset int, extend bool) *State {
	if s == nil {
		s = CreateEmpty()
	}
	focus := clamp(offset, 0, len(s.chars))
	anchor := focus
	if extend {
		anchor = s.sel.Anchor
	}
	return WithSelection(s, Selection{Anchor: anchor, Focus: focus})
}

// WithSelection returns s with a new selection. Changing the selection drops
// any pending inline style override.
func WithSelection(s *State, sel Selection) *State {
	if s == nil {
		s = CreateEmpty()
	}
	sel.Anchor = clamp(sel.Anchor, 0, len(s.chars))
	sel.Focus = clamp(sel.Focus, 0, len(s.chars))
	if sel == s.sel && s.override == nil {
		return s
	}
	return &State{chars: s.chars, sel: sel}
}

// SelectAll selects the whole document.
func SelectAll(s *State) *State {
	return WithSelection(s, Selection{Anchor: 0, Focus: s.Len()})
}
