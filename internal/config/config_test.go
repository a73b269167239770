package config

import (
	"reflect"
	"testing"
)

func TestLoadUsage(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", nil, true},
		{"lone -h", []string{"-h"}, true},
		{"-h with more args is a command", []string{"-h", "x"}, false},
		{"plain command", []string{"sleep", "5"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load(tc.args)
			if cfg.ShowUsage != tc.want {
				t.Fatalf("ShowUsage = %v", cfg.ShowUsage)
			}
		})
	}
}

func TestLoadForwardsArgsVerbatim(t *testing.T) {
	cfg := Load([]string{"mytool", "-h", "--flag=1", "-n", "3"})
	if cfg.Command != "mytool" {
		t.Fatalf("command: %q", cfg.Command)
	}
	want := []string{"-h", "--flag=1", "-n", "3"}
	if !reflect.DeepEqual(cfg.Args, want) {
		t.Fatalf("args: %#v", cfg.Args)
	}
}

func TestLoadDashHCommand(t *testing.T) {
	// Only a LONE -h means usage; here it names the child program.
	cfg := Load([]string{"-h", "x"})
	if cfg.ShowUsage || cfg.Command != "-h" || len(cfg.Args) != 1 {
		t.Fatalf("cfg: %+v", cfg)
	}
}

func TestUsageBanner(t *testing.T) {
	if got := Usage("splitstream"); got != "Usage: splitstream <command> [args]" {
		t.Fatalf("usage: %q", got)
	}
	// argv0 is reproduced as invoked, path and all.
	if got := Usage("./bin/sv"); got != "Usage: ./bin/sv <command> [args]" {
		t.Fatalf("usage: %q", got)
	}
}

func TestEnvOptions(t *testing.T) {
	t.Setenv("SPLITSTREAM_THEME", "light")
	t.Setenv("SPLITSTREAM_KILL_CHILD", "1")
	cfg := Load([]string{"cat"})
	if cfg.Theme != ThemeLight {
		t.Fatalf("theme: %s", cfg.Theme)
	}
	if !cfg.KillChildOnExit {
		t.Fatalf("kill child not set")
	}

	t.Setenv("SPLITSTREAM_THEME", "no-such-theme")
	t.Setenv("SPLITSTREAM_KILL_CHILD", "false")
	cfg = Load([]string{"cat"})
	if cfg.Theme != ThemeDark {
		t.Fatalf("theme fallback: %s", cfg.Theme)
	}
	if cfg.KillChildOnExit {
		t.Fatalf("kill child should be off")
	}
}
