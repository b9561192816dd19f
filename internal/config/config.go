// Package config loads the demo's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"rtedit/internal/fakeapi"
	"rtedit/internal/richtext"
	"rtedit/internal/tui/widgets/editor"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "~/.rtedit.yaml"

type Config struct {
	Placeholder   string        `yaml:"placeholder" validate:"required"`
	SampleContent string        `yaml:"sampleContent" validate:"required"`
	LoadDelay     time.Duration `yaml:"loadDelay" validate:"gte=0"`
	SaveDelay     time.Duration `yaml:"saveDelay" validate:"gte=0"`
	PreviewStyle  string        `yaml:"previewStyle" validate:"oneof=auto dark light notty"`
	NoColor       bool          `yaml:"noColor"`
	LogFile       string        `yaml:"logFile,omitempty"`
	// CustomToolbar lists the styles offered by the custom toolbar pane.
	CustomToolbar []string `yaml:"customToolbar,flow" validate:"required,unique,dive,oneof=BOLD ITALIC UNDERLINE STRIKETHROUGH CODE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Placeholder:   editor.DefaultPlaceholder,
		SampleContent: fakeapi.SampleContent,
		LoadDelay:     time.Second,
		SaveDelay:     500 * time.Millisecond,
		PreviewStyle:  "auto",
		CustomToolbar: []string{string(richtext.Bold), string(richtext.Underline), string(richtext.Code)},
	}
}

var validate = validator.New()

// NewFromReader decodes YAML on top of Default and validates the result.
func NewFromReader(r io.Reader) (*Config, error) {
	c := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &c, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(ExpandPath(path))
	if errors.Is(err, os.ErrNotExist) {
		c := Default()
		return &c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()
	return NewFromReader(f)
}

func Save(path string, c *Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ToolbarStyles returns CustomToolbar as inline styles.
func (c *Config) ToolbarStyles() []richtext.Style {
	out := make([]richtext.Style, len(c.CustomToolbar))
	for i, s := range c.CustomToolbar {
		out[i] = richtext.Style(s)
	}
	return out
}

// ExpandPath resolves ~/, environment variables and relative paths.
func ExpandPath(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, p[2:])
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}
