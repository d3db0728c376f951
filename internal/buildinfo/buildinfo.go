package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/dyne/capspad/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("capspad %s (commit=%s, date=%s)", Version, Commit, Date)
}
