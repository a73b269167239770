package config

import (
	"fmt"
	"os"
	"strings"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config holds the resolved command line and environment options. The
// command line carries no flags of its own: everything after the command
// name belongs to the child and is forwarded verbatim.
type Config struct {
	Command string
	Args    []string

	// ShowUsage is set for an empty command line or a lone -h.
	ShowUsage bool

	Theme           Theme
	KillChildOnExit bool
}

// Load interprets args, the command line after argv0. A lone "-h" requests
// the usage banner; in any other position -h is an ordinary argument and may
// even name the child program.
func Load(args []string) *Config {
	cfg := &Config{
		Theme:           themeFromEnv(),
		KillChildOnExit: getenvBool("SPLITSTREAM_KILL_CHILD", false),
	}
	if len(args) == 0 || (len(args) == 1 && args[0] == "-h") {
		cfg.ShowUsage = true
		return cfg
	}
	cfg.Command = args[0]
	cfg.Args = args[1:]
	return cfg
}

// Usage renders the banner printed to stderr when no command was given.
func Usage(argv0 string) string {
	return fmt.Sprintf("Usage: %s <command> [args]", argv0)
}

func themeFromEnv() Theme {
	if strings.ToLower(getenvDefault("SPLITSTREAM_THEME", string(ThemeDark))) == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

func getenvDefault(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func getenvBool(k string, d bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	if v == "" {
		return d
	}
	return v != "0" && v != "false" && v != "no"
}

func (c *Config) String() string {
	return fmt.Sprintf("command=%s args=%d theme=%s kill_child=%v", c.Command, len(c.Args), c.Theme, c.KillChildOnExit)
}
