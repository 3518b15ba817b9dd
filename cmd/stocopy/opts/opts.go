package opts

import (
	"github.com/racekit/stocopy/pkg/report"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Source is the directory holding the setup files (usually the cwd)
	Source string
	// SetupsDir is the resolved iRacing setups root
	SetupsDir string
	// UserLogger prints user-facing per-file feedback
	UserLogger *report.UserLogger
}
