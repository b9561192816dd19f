package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rtedit/internal/richtext"
)

// LoadFunc fetches a replacement document. ctx is cancelled when the editor
// is closed.
type LoadFunc func(ctx context.Context) (*richtext.State, error)

// SaveFunc submits the plain text of a document.
type SaveFunc func(ctx context.Context, text string) error

// LoadedMsg carries the result of Load back to the editor that issued it.
type LoadedMsg struct {
	id    int
	State *richtext.State
	Err   error
}

// For reports whether msg answers a Load issued by m.
func (msg LoadedMsg) For(m *Model) bool { return msg.id == m.id }

// SavedMsg reports the outcome of Save. The editor itself ignores it.
type SavedMsg struct {
	id   int
	Text string
	Err  error
}

func (msg SavedMsg) For(m *Model) bool { return msg.id == m.id }

// Load runs fetch off the event loop and replaces the document with its
// result through the same path as a user edit. Results that arrive after
// Close are dropped.
func (m *Model) Load(fetch LoadFunc) tea.Cmd {
	if m.closed || fetch == nil {
		return nil
	}
	id, ctx := m.id, m.ctx
	return func() tea.Msg {
		st, err := fetch(ctx)
		return LoadedMsg{id: id, State: st, Err: err}
	}
}

// Save captures the plain text now and hands it to submit off the event
// loop. It never touches document state. Closed editors do not save.
func (m *Model) Save(submit SaveFunc) tea.Cmd {
	if m.closed || submit == nil {
		return nil
	}
	id, text := m.id, m.State().PlainText()
	ctx := context.WithoutCancel(m.ctx)
	return func() tea.Msg {
		err := submit(ctx, text)
		return SavedMsg{id: id, Text: text, Err: err}
	}
}
