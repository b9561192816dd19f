package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreateEmpty(t *testing.T) {
	s := CreateEmpty()
	if s.PlainText() != "" {
		t.Fatalf("expected empty text, got %q", s.PlainText())
	}
	if s.CurrentInlineStyle().Len() != 0 {
		t.Fatalf("expected no inline styles")
	}
}

func TestToggleCollapsedSetsOverride(t *testing.T) {
	s := CreateEmpty()
	next := ToggleInlineStyle(s, Bold)
	if next == s {
		t.Fatalf("expected a new revision")
	}
	if !next.CurrentInlineStyle().Has(Bold) {
		t.Fatalf("expected BOLD at cursor")
	}
	if s.CurrentInlineStyle().Has(Bold) {
		t.Fatalf("input state must not change")
	}
	again := ToggleInlineStyle(next, Bold)
	if again.CurrentInlineStyle().Has(Bold) {
		t.Fatalf("expected BOLD removed after second toggle")
	}
}

func TestInsertUsesOverride(t *testing.T) {
	s := ToggleInlineStyle(CreateEmpty(), Italic)
	s = InsertText(s, "hi")
	if s.PlainText() != "hi" {
		t.Fatalf("unexpected text %q", s.PlainText())
	}
	for i := 0; i < s.Len(); i++ {
		if !s.StyleAt(i).Has(Italic) {
			t.Fatalf("char %d not italic", i)
		}
	}
	if _, ok := s.InlineStyleOverride(); ok {
		t.Fatalf("override should be consumed by insertion")
	}
	// typing continues in the style of the previous char
	s = InsertText(s, "!")
	if !s.StyleAt(2).Has(Italic) {
		t.Fatalf("expected inherited italic")
	}
}

func TestToggleRange(t *testing.T) {
	s := CreateWithText("hello world")
	s = WithSelection(s, Selection{Anchor: 0, Focus: 5})
	s = ToggleInlineStyle(s, Underline)
	for i := 0; i < 5; i++ {
		if !s.StyleAt(i).Has(Underline) {
			t.Fatalf("char %d not underlined", i)
		}
	}
	if s.StyleAt(5).Has(Underline) {
		t.Fatalf("char outside the selection changed")
	}
	s = ToggleInlineStyle(s, Underline)
	for i := 0; i < s.Len(); i++ {
		if s.StyleAt(i).Len() != 0 {
			t.Fatalf("char %d still styled: %v", i, s.StyleAt(i))
		}
	}
}

func TestDoubleToggleKeepsTextAndOtherStyles(t *testing.T) {
	base := CreateWithText("abc def")
	base = WithSelection(base, Selection{Anchor: 1, Focus: 6})
	base = ToggleInlineStyle(base, Italic)
	base = WithSelection(base, Selection{Anchor: 0, Focus: 3})

	cases := []struct {
		name string
		sel  Selection
	}{
		{"collapsed start", Collapsed(0)},
		{"collapsed middle", Collapsed(4)},
		{"range", Selection{Anchor: 0, Focus: 3}},
		{"backwards range", Selection{Anchor: 7, Focus: 2}},
	}
	for _, style := range []Style{Bold, Italic, Underline, Style("SOMETHING-ELSE")} {
		for _, c := range cases {
			s := WithSelection(base, c.sel)
			out := ToggleInlineStyle(ToggleInlineStyle(s, style), style)
			if out.PlainText() != s.PlainText() {
				t.Fatalf("%s/%s: text changed", style, c.name)
			}
			for i := 0; i < s.Len(); i++ {
				if diff := cmp.Diff(s.StyleAt(i).Remove(style), out.StyleAt(i).Remove(style)); diff != "" {
					t.Fatalf("%s/%s: other styles changed at %d (-want +got):\n%s", style, c.name, i, diff)
				}
			}
			if !out.CurrentInlineStyle().Remove(style).Equal(s.CurrentInlineStyle().Remove(style)) {
				t.Fatalf("%s/%s: current style drifted", style, c.name)
			}
		}
	}
}

func TestDeleteAndMove(t *testing.T) {
	s := CreateWithText("abcd")
	s = MoveTo(s, 4, false)
	s = DeleteBackward(s)
	if s.PlainText() != "abc" {
		t.Fatalf("got %q", s.PlainText())
	}
	s = Move(s, -10, false)
	if s.Selection() != Collapsed(0) {
		t.Fatalf("expected caret clamped to start, got %+v", s.Selection())
	}
	if DeleteBackward(s) != s {
		t.Fatalf("backspace at start should be a no-op")
	}
	s = DeleteForward(s)
	if s.PlainText() != "bc" {
		t.Fatalf("got %q", s.PlainText())
	}
	s = SelectAll(s)
	s = InsertText(s, "z")
	if s.PlainText() != "z" || s.Selection() != Collapsed(1) {
		t.Fatalf("replace selection failed: %q %+v", s.PlainText(), s.Selection())
	}
}

func TestMoveCollapsesRange(t *testing.T) {
	s := WithSelection(CreateWithText("abcdef"), Selection{Anchor: 1, Focus: 4})
	if got := Move(s, 1, false).Selection(); got != Collapsed(4) {
		t.Fatalf("right: got %+v", got)
	}
	if got := Move(s, -1, false).Selection(); got != Collapsed(1) {
		t.Fatalf("left: got %+v", got)
	}
	if got := Move(s, 1, true).Selection(); got != (Selection{Anchor: 1, Focus: 5}) {
		t.Fatalf("extend: got %+v", got)
	}
}

func TestRuns(t *testing.T) {
	s := CreateWithText("one two")
	s = WithSelection(s, Selection{Anchor: 4, Focus: 7})
	s = ToggleInlineStyle(s, Bold)
	got := s.Runs()
	want := []Run{
		{Start: 0, Text: "one ", Styles: StyleSet{}},
		{Start: 4, Text: "two", Styles: NewStyleSet(Bold)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestPositionOffset(t *testing.T) {
	s := CreateWithText("ab\ncdef\ng")
	cases := []struct {
		off int
		pos Position
	}{
		{0, Position{0, 0}},
		{2, Position{0, 2}},
		{3, Position{1, 0}},
		{7, Position{1, 4}},
		{9, Position{2, 1}},
	}
	for _, c := range cases {
		if got := s.Position(c.off); got != c.pos {
			t.Fatalf("Position(%d) = %+v, want %+v", c.off, got, c.pos)
		}
		if got := s.Offset(c.pos); got != c.off {
			t.Fatalf("Offset(%+v) = %d, want %d", c.pos, got, c.off)
		}
	}
	if got := s.Offset(Position{Line: 0, Col: 9}); got != 2 {
		t.Fatalf("column clamp: got %d", got)
	}
	if got := s.Offset(Position{Line: 5}); got != s.Len() {
		t.Fatalf("line clamp: got %d", got)
	}
}
