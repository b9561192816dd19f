package state

// TagKind enumerates the status chips shown for a document.
type TagKind int

const (
	// Stable ordering for display: Mode, Edited, Loading, Saving, Chars, Words
	CONTROLLED TagKind = iota
	UNCONTROLLED
	EDITED
	LOADING
	SAVING
	CHARS
	WORDS
)

// Tag represents a single status chip. Value is used for numeric counters;
// other tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
