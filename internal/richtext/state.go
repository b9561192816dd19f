// Package richtext is a small immutable rich-text document model. A State
// holds characters tagged with inline style sets, the current selection and,
// for a collapsed cursor, a pending inline style override.
//
// States are values: every transformation returns a new *State and never
// touches its input, so two states are the same revision iff the pointers are
// equal.
package richtext

import "strings"

// Selection is a pair of rune offsets. Focus is where the caret is drawn.
type Selection struct {
	Anchor int
	Focus  int
}

// Collapsed returns a selection with both ends at offset.
func Collapsed(offset int) Selection { return Selection{Anchor: offset, Focus: offset} }

func (s Selection) IsCollapsed() bool { return s.Anchor == s.Focus }

func (s Selection) Start() int { return min(s.Anchor, s.Focus) }

func (s Selection) End() int { return max(s.Anchor, s.Focus) }

// Contains reports whether offset lies inside a non-collapsed selection.
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start() && offset < s.End()
}

type char struct {
	r      rune
	styles StyleSet
}

// State is one revision of a document.
type State struct {
	// chars is shared between revisions and must never be written to.
	chars    []char
	sel      Selection
	override *StyleSet
}

// Run is a maximal stretch of characters sharing one style set.
type Run struct {
	Start  int
	Text   string
	Styles StyleSet
}

// Position is a zero-based line and column (in runes).
type Position struct {
	Line int
	Col  int
}

// CreateEmpty returns an empty document with a collapsed selection.
func CreateEmpty() *State { return &State{} }

// CreateWithText returns an unstyled document holding text with the caret at
// the start.
func CreateWithText(text string) *State {
	rs := []rune(text)
	chars := make([]char, len(rs))
	for i, r := range rs {
		chars[i] = char{r: r}
	}
	return &State{chars: chars}
}

func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.chars)
}

func (s *State) PlainText() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s.chars))
	for _, c := range s.chars {
		b.WriteRune(c.r)
	}
	return b.String()
}

func (s *State) Selection() Selection {
	if s == nil {
		return Selection{}
	}
	return s.sel
}

// InlineStyleOverride returns the pending style set for the next insertion,
// if one was set by toggling a style on a collapsed cursor.
func (s *State) InlineStyleOverride() (StyleSet, bool) {
	if s == nil || s.override == nil {
		return StyleSet{}, false
	}
	return *s.override, true
}

// StyleAt returns the styles of the character at offset.
func (s *State) StyleAt(offset int) StyleSet {
	if s == nil || offset < 0 || offset >= len(s.chars) {
		return StyleSet{}
	}
	return s.chars[offset].styles
}

// RuneAt returns the character at offset.
func (s *State) RuneAt(offset int) rune {
	if s == nil || offset < 0 || offset >= len(s.chars) {
		return 0
	}
	return s.chars[offset].r
}

// CurrentInlineStyle is the style set in effect at the selection: the
// pending override when present, the style of the first selected character
// for a range, and otherwise the style of the character the caret follows.
func (s *State) CurrentInlineStyle() StyleSet {
	if s == nil {
		return StyleSet{}
	}
	if s.override != nil {
		return *s.override
	}
	if !s.sel.IsCollapsed() {
		return s.StyleAt(s.sel.Start())
	}
	off := s.sel.Focus
	if off > 0 && s.chars[off-1].r != '\n' {
		return s.chars[off-1].styles
	}
	if off < len(s.chars) && s.chars[off].r != '\n' {
		return s.chars[off].styles
	}
	return StyleSet{}
}

// Runs splits the document into maximal same-style runs.
func (s *State) Runs() []Run {
	if s.Len() == 0 {
		return nil
	}
	var runs []Run
	var b strings.Builder
	start := 0
	cur := s.chars[0].styles
	for i, c := range s.chars {
		if !c.styles.Equal(cur) {
			runs = append(runs, Run{Start: start, Text: b.String(), Styles: cur})
			b.Reset()
			start = i
			cur = c.styles
		}
		b.WriteRune(c.r)
	}
	runs = append(runs, Run{Start: start, Text: b.String(), Styles: cur})
	return runs
}

// Position converts a rune offset into a line and column.
func (s *State) Position(offset int) Position {
	offset = clamp(offset, 0, s.Len())
	var p Position
	for i := 0; i < offset; i++ {
		if s.chars[i].r == '\n' {
			p.Line++
			p.Col = 0
			continue
		}
		p.Col++
	}
	return p
}

// Offset converts a line and column into a rune offset. Columns past the end
// of a line clamp to the line end; lines past the end clamp to the document
// end.
func (s *State) Offset(p Position) int {
	if p.Line < 0 {
		return 0
	}
	line, col := 0, 0
	for i := 0; i < s.Len(); i++ {
		if line == p.Line {
			if col == p.Col || s.chars[i].r == '\n' {
				return i
			}
			col++
			continue
		}
		if s.chars[i].r == '\n' {
			line++
		}
	}
	return s.Len()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
