package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"splitstream/internal/ingest"
	"splitstream/internal/util/logx"
)

// readChunk performs one blocking read off a child stream and reports the
// result. Update re-arms it after every delivery while the stream is open,
// so each stream has exactly one outstanding read at a time.
func readChunk(idx int, r *ingest.Reader) tea.Cmd {
	return func() tea.Msg {
		data, err := r.Next()
		return chunkMsg{pane: idx, data: data, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case chunkMsg:
		p := &m.panes[msg.pane]
		p.stream.Append(msg.data)
		if msg.err != nil {
			p.stream.Close()
			if msg.err != io.EOF {
				logx.Warnf("%s read: %v", p.stream.Name(), msg.err)
			}
			return m, nil
		}
		return m, readChunk(msg.pane, p.reader)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Focus):
		m.focus = 1 - m.focus
	case key.Matches(msg, m.keymap.LineUp):
		m.focused().scroll.lineUp()
	case key.Matches(msg, m.keymap.LineDown):
		m.focused().scroll.lineDown()
	case key.Matches(msg, m.keymap.PageUp):
		m.focused().scroll.pageUp(pageSize(m.height))
	case key.Matches(msg, m.keymap.PageDown):
		m.focused().scroll.pageDown(pageSize(m.height))
	case key.Matches(msg, m.keymap.Top):
		m.focused().scroll.toTop()
	case key.Matches(msg, m.keymap.Bottom):
		m.focused().scroll.toBottom()
	}
	return nil
}
