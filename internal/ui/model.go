package ui

import (
	"splitstream/internal/config"
	"splitstream/internal/ingest"
	"splitstream/internal/stream"
)

const (
	paneStdout = iota
	paneStderr
)

// pane couples one captured stream with its reader and scroll position.
type pane struct {
	stream *stream.Stream
	reader *ingest.Reader
	scroll scrollState
}

// Model holds all UI state. It is owned by the bubbletea event loop and
// only ever touched from Update and View, so it needs no locking.
type Model struct {
	cfg    *config.Config
	panes  [2]pane
	focus  int
	width  int
	height int
	styles Styles
	keymap KeyMap
}

func (m *Model) focused() *pane { return &m.panes[m.focus] }

// chunkMsg reports one read from a child stream. A non-nil err ends the
// stream; data may arrive together with it.
type chunkMsg struct {
	pane int
	data []byte
	err  error
}
