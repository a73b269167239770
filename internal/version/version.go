package version

import "strings"

// Populated at build time, e.g.
//
//	go build -ldflags "-X splitstream/internal/version.Version=v0.2.0"
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

func String() string {
	parts := []string{Version}
	if Commit != "" {
		parts = append(parts, "("+Commit+")")
	}
	if Date != "" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
