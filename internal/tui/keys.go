package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"rtedit/internal/richtext"
)

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Load        key.Binding
	Save        key.Binding
	Preview     key.Binding
	PreviewMode key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),
		Load:        key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load async")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save async")),
		Preview:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "toggle preview")),
		PreviewMode: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "preview view")),
		Copy:        key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy text")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Load, k.Save, k.Preview, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Load, k.Save, k.Copy},
		{k.Preview, k.PreviewMode},
		{k.Help, k.Quit},
	}
}

// customToolbarKeys binds each style the custom toolbar may offer.
var customToolbarKeys = map[richtext.Style]key.Binding{
	richtext.Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
	richtext.Italic:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "italic")),
	richtext.Underline:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
	richtext.Strikethrough: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "strikethrough")),
	richtext.Code:          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "code")),
}

var customToolbarLabels = map[richtext.Style]string{
	richtext.Bold:          "B",
	richtext.Italic:        "I",
	richtext.Underline:     "U",
	richtext.Strikethrough: "S",
	richtext.Code:          "</>",
}
