package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"splitstream/internal/config"
	"splitstream/internal/ui"
	"splitstream/internal/util/logx"
	"splitstream/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg := config.Load(os.Args[1:])

	if cfg.ShowUsage {
		fmt.Fprintln(os.Stderr, config.Usage(os.Args[0]))
		return
	}

	// SIGTERM and out-of-band interrupts cancel the program; Escape is the
	// in-band way out. Ctrl-C inside the TUI arrives as a key, not a signal.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting splitstream %s: %s", version.String(), cfg.String())
	err := ui.Run(ctx, cfg)
	if logx.DumpOnExit() {
		if d := logx.Dump(); d != "" {
			fmt.Fprintln(os.Stderr, d)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "splitstream:", err)
		os.Exit(1)
	}
}
