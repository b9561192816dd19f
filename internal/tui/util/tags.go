package util

import (
	"strings"

	"rtedit/internal/tui/state"
)

// DocStatus is what the status chips are computed from.
type DocStatus struct {
	Controlled bool
	Text       string // current plain text
	Saved      string // plain text at the last successful save
	Loading    bool
	Saving     bool
}

// ComputeTags calculates the status chips for a document.
//
// The returned slice preserves a stable order:
//
//	Mode, Edited, Loading, Saving, Chars, Words
//
// Rules:
//   - Exactly one of Controlled/Uncontrolled is present.
//   - Edited means the text differs from the last saved text. Style-only
//     changes do not count because saves only carry plain text.
//   - Chars and Words are always included (counters).
func ComputeTags(d DocStatus) []state.Tag {
	tags := make([]state.Tag, 0, 6)

	// 1) Mode
	if d.Controlled {
		tags = append(tags, state.Tag{Kind: state.CONTROLLED})
	} else {
		tags = append(tags, state.Tag{Kind: state.UNCONTROLLED})
	}

	// 2) Edited
	if d.Text != d.Saved {
		tags = append(tags, state.Tag{Kind: state.EDITED})
	}

	// 3) Loading / 4) Saving
	if d.Loading {
		tags = append(tags, state.Tag{Kind: state.LOADING})
	}
	if d.Saving {
		tags = append(tags, state.Tag{Kind: state.SAVING})
	}

	// 5) Chars (N) / 6) Words (N)
	tags = append(tags, state.Tag{Kind: state.CHARS, Value: runeLen(d.Text)})
	tags = append(tags, state.Tag{Kind: state.WORDS, Value: len(strings.Fields(d.Text))})

	return tags
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
