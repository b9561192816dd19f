package tagchips

import (
	"strings"
	"testing"

	"rtedit/internal/tui/util"
)

func TestRenderTagsNoColor(t *testing.T) {
	tags := util.ComputeTags(util.DocStatus{Controlled: true, Text: "two words", Saving: true})
	out := View(tags, true)

	wants := []string{"[Controlled]", "[Edited]", "[Saving]", "[Chars 9]", "[Words 2]"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
	if strings.Contains(out, "[Loading]") {
		t.Fatalf("unexpected Loading chip: %s", out)
	}
}

func TestEmpty(t *testing.T) {
	if View(nil, true) != "" {
		t.Fatalf("expected empty output for no tags")
	}
}
