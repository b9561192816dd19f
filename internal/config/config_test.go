package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"

	"rtedit/internal/richtext"
	"rtedit/internal/tui/widgets/editor"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := validate.Struct(c); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestNewFromReaderOverlaysDefaults(t *testing.T) {
	c, err := NewFromReader(strings.NewReader("sampleContent: hi there\nloadDelay: 250ms\npreviewStyle: dark\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.SampleContent != "hi there" || c.LoadDelay != 250*time.Millisecond || c.PreviewStyle != "dark" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.Placeholder != Default().Placeholder {
		t.Fatalf("placeholder should keep its default, got %q", c.Placeholder)
	}
}

func TestNewFromReaderRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"preview style":     "previewStyle: sepia\n",
		"negative delay":    "saveDelay: -1s\n",
		"duplicate style":   "customToolbar: [BOLD, BOLD]\n",
		"unknown style":     "customToolbar: [GLOW]\n",
		"empty placeholder": "placeholder: \"\"\n",
	}
	for name, in := range cases {
		_, err := NewFromReader(strings.NewReader(in))
		var verr validator.ValidationErrors
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
	if _, err := NewFromReader(strings.NewReader("placeholder: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rtedit.yaml")
	c := Default()
	c.NoColor = true
	c.CustomToolbar = []string{"ITALIC"}
	if err := Save(path, &c); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&c, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestToolbarStyles(t *testing.T) {
	c := Default()
	want := []richtext.Style{richtext.Bold, richtext.Underline, richtext.Code}
	if diff := cmp.Diff(want, c.ToolbarStyles()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/x.yaml"); got != filepath.Join(home, "x.yaml") {
		t.Fatalf("got %q", got)
	}
	t.Setenv("RTEDIT_TEST_DIR", "/tmp/rt")
	if got := ExpandPath("$RTEDIT_TEST_DIR/c.yaml"); got != "/tmp/rt/c.yaml" {
		t.Fatalf("got %q", got)
	}
	if !filepath.IsAbs(ExpandPath("rel.yaml")) {
		t.Fatalf("relative paths should become absolute")
	}
}

func TestSaveWrapsWriteErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := Default()
	err := Save(filepath.Join(blocker, "sub", "rtedit.yaml"), &c)
	if err == nil || !strings.HasPrefix(err.Error(), "create config dir: ") {
		t.Fatalf("expected wrapped mkdir error, got %v", err)
	}
	err = Save(dir, &c)
	if err == nil || !strings.HasPrefix(err.Error(), "write config: ") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
}

func TestDefaultPlaceholderMatchesEditor(t *testing.T) {
	if Default().Placeholder != editor.DefaultPlaceholder {
		t.Fatalf("got %q", Default().Placeholder)
	}
}
