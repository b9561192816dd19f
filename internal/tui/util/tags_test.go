package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rtedit/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestModeTagsExclusive(t *testing.T) {
	tags := ComputeTags(DocStatus{Controlled: true})
	if _, ok := findKind(tags, state.CONTROLLED); !ok {
		t.Fatalf("expected CONTROLLED tag present")
	}
	if _, ok := findKind(tags, state.UNCONTROLLED); ok {
		t.Fatalf("did not expect UNCONTROLLED tag")
	}
	tags = ComputeTags(DocStatus{})
	if _, ok := findKind(tags, state.UNCONTROLLED); !ok {
		t.Fatalf("expected UNCONTROLLED tag present")
	}
}

func TestEditedComparesWithSaved(t *testing.T) {
	if _, ok := findKind(ComputeTags(DocStatus{Text: "a", Saved: "a"}), state.EDITED); ok {
		t.Fatalf("unchanged text must not be EDITED")
	}
	if _, ok := findKind(ComputeTags(DocStatus{Text: "ab", Saved: "a"}), state.EDITED); !ok {
		t.Fatalf("expected EDITED tag")
	}
}

func TestStableOrderAndCounters(t *testing.T) {
	got := ComputeTags(DocStatus{Controlled: true, Text: "héllo  wörld", Loading: true, Saving: true})
	want := []state.Tag{
		{Kind: state.CONTROLLED},
		{Kind: state.EDITED},
		{Kind: state.LOADING},
		{Kind: state.SAVING},
		{Kind: state.CHARS, Value: 12},
		{Kind: state.WORDS, Value: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}
