package util

import "testing"

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if NoColor(false) {
		t.Fatalf("expected color enabled")
	}
	if !NoColor(true) {
		t.Fatalf("explicit flag must disable color")
	}
	t.Setenv("NO_COLOR", "1")
	if !NoColor(false) {
		t.Fatalf("NO_COLOR must disable color")
	}
}
