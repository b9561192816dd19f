package richtext

import (
	"slices"
	"strings"
)

// Style is an inline style token such as BOLD. The set of styles is open:
// any token is valid, renderers simply ignore the ones they do not know.
type Style string

const (
	Bold          Style = "BOLD"
	Italic        Style = "ITALIC"
	Underline     Style = "UNDERLINE"
	Strikethrough Style = "STRIKETHROUGH"
	Code          Style = "CODE"
)

// StyleSet is an immutable, ordered set of styles. The zero value is empty.
type StyleSet struct {
	styles []Style
}

// NewStyleSet returns a set holding the given styles, deduplicated.
func NewStyleSet(styles ...Style) StyleSet {
	if len(styles) == 0 {
		return StyleSet{}
	}
	out := slices.Clone(styles)
	slices.Sort(out)
	return StyleSet{styles: slices.Compact(out)}
}

func (s StyleSet) Has(st Style) bool {
	_, ok := slices.BinarySearch(s.styles, st)
	return ok
}

func (s StyleSet) Len() int { return len(s.styles) }

// Add returns a set that also contains st.
func (s StyleSet) Add(st Style) StyleSet {
	i, ok := slices.BinarySearch(s.styles, st)
	if ok {
		return s
	}
	out := make([]Style, 0, len(s.styles)+1)
	out = append(out, s.styles[:i]...)
	out = append(out, st)
	out = append(out, s.styles[i:]...)
	return StyleSet{styles: out}
}

// Remove returns a set without st.
func (s StyleSet) Remove(st Style) StyleSet {
	i, ok := slices.BinarySearch(s.styles, st)
	if !ok {
		return s
	}
	if len(s.styles) == 1 {
		return StyleSet{}
	}
	out := make([]Style, 0, len(s.styles)-1)
	out = append(out, s.styles[:i]...)
	out = append(out, s.styles[i+1:]...)
	return StyleSet{styles: out}
}

// Toggle adds st when absent and removes it when present.
func (s StyleSet) Toggle(st Style) StyleSet {
	if s.Has(st) {
		return s.Remove(st)
	}
	return s.Add(st)
}

// Slice returns a copy of the styles in sorted order.
func (s StyleSet) Slice() []Style { return slices.Clone(s.styles) }

func (s StyleSet) Equal(o StyleSet) bool { return slices.Equal(s.styles, o.styles) }

func (s StyleSet) String() string {
	parts := make([]string, len(s.styles))
	for i, st := range s.styles {
		parts[i] = string(st)
	}
	return strings.Join(parts, "|")
}
