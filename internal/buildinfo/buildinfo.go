// Package buildinfo carries build identifiers injected with -ldflags -X.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long describes the build including commit and date when they are known.
func Long() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && s != Commit {
		s += " " + Commit
	}
	if Date != "" && Date != "unknown" {
		s += fmt.Sprintf(" (%s)", Date)
	}
	return s
}
