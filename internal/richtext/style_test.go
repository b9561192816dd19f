package richtext

import "testing"

func TestStyleSetOps(t *testing.T) {
	s := NewStyleSet(Underline, Bold, Bold)
	if s.Len() != 2 || s.String() != "BOLD|UNDERLINE" {
		t.Fatalf("unexpected set %q (len %d)", s.String(), s.Len())
	}
	s2 := s.Add(Italic)
	if s.Has(Italic) {
		t.Fatalf("Add must not modify the receiver")
	}
	if !s2.Has(Italic) || s2.String() != "BOLD|ITALIC|UNDERLINE" {
		t.Fatalf("unexpected set after Add: %s", s2)
	}
	if s2.Remove(Bold).Has(Bold) {
		t.Fatalf("Remove failed")
	}
	if !s2.Toggle(Code).Toggle(Code).Equal(s2) {
		t.Fatalf("double toggle should be identity")
	}
	var zero StyleSet
	if !zero.Equal(NewStyleSet()) || zero.Has(Bold) {
		t.Fatalf("zero set should be empty")
	}
}
