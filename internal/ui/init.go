package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"splitstream/internal/config"
	"splitstream/internal/ingest"
	"splitstream/internal/stream"
	"splitstream/internal/util/logx"
)

func newModel(cfg *config.Config, child *ingest.Child) *Model {
	m := &Model{
		cfg:    cfg,
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		keymap: DefaultKeyMap(),
	}
	// Both panels follow the tail until the user scrolls away.
	m.panes[paneStdout] = pane{
		stream: stream.New(stream.Stdout),
		reader: ingest.NewReader(child.Stdout),
		scroll: scrollState{autoscroll: true},
	}
	m.panes[paneStderr] = pane{
		stream: stream.New(stream.Stderr),
		reader: ingest.NewReader(child.Stderr),
		scroll: scrollState{autoscroll: true},
	}
	// Ask the terminal for its size up front so the first frame and the
	// page stride have something to work with; the authoritative size
	// arrives with the first WindowSizeMsg.
	m.width, m.height = detectTerminalSize()
	return m
}

func detectTerminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0
	}
	return w, h
}

// Run spawns the child command and drives the UI until Escape, context
// cancellation, or a terminal failure. The child is spawned before the
// terminal enters raw mode so spawn errors print normally.
func Run(ctx context.Context, cfg *config.Config) error {
	child, err := ingest.Spawn(cfg.Command, cfg.Args)
	if err != nil {
		return err
	}
	m := newModel(cfg, child)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()
	if cfg.KillChildOnExit {
		if err := child.Kill(); err != nil {
			logx.Debugf("kill child: %v", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("ui: %w", runErr)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		readChunk(paneStdout, m.panes[paneStdout].reader),
		readChunk(paneStderr, m.panes[paneStderr].reader),
	)
}
