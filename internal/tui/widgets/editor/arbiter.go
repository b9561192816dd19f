package editor

import (
	"errors"
	"fmt"

	"rtedit/internal/richtext"
)

// Mode reports who owns an editor's document state. It is decided once, in
// New, and never changes afterwards.
type Mode int

const (
	// Uncontrolled editors keep the document in their own store.
	Uncontrolled Mode = iota
	// Controlled editors hand every new document to the host's OnChange and
	// display whatever the host last passed in.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "Controlled"
	}
	return "Uncontrolled"
}

// ErrPartialControl is wrapped by the ConfigError New returns when only one of
// Options.Value and Options.OnChange is set.
var ErrPartialControl = errors.New("value and onChange must be supplied together")

// ConfigError describes an invalid Options value.
type ConfigError struct {
	Missing string // the option that should have been supplied
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("editor config: %s is missing: %v", e.Missing, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// source is the one authoritative document slot of an editor. Exactly one of
// controlled and uncontrolled backs an instance.
type source interface {
	mode() Mode
	current() *richtext.State
	request(next *richtext.State)
}

type controlled struct {
	value    *richtext.State
	onChange func(*richtext.State)
}

func (c *controlled) mode() Mode                    { return Controlled }
func (c *controlled) current() *richtext.State      { return c.value }
func (c *controlled) request(next *richtext.State)  { c.onChange(next) }
func (c *controlled) receive(value *richtext.State) { c.value = value }

type uncontrolled struct {
	store *richtext.State
}

func (u *uncontrolled) mode() Mode                   { return Uncontrolled }
func (u *uncontrolled) current() *richtext.State     { return u.store }
func (u *uncontrolled) request(next *richtext.State) { u.store = next }

func resolveSource(value *richtext.State, onChange func(*richtext.State)) (source, error) {
	switch {
	case value != nil && onChange != nil:
		return &controlled{value: value, onChange: onChange}, nil
	case value == nil && onChange == nil:
		return &uncontrolled{store: richtext.CreateEmpty()}, nil
	case value != nil:
		return nil, &ConfigError{Missing: "OnChange", Err: ErrPartialControl}
	default:
		return nil, &ConfigError{Missing: "Value", Err: ErrPartialControl}
	}
}
