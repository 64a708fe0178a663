// Package version reports build information for the enum-mapper CLI.
package version

import (
	goversion "github.com/caarlos0/go-version"
)

const (
	Application = "enum-mapper"
	Description = "Checks and performs enum conversions between Go types"
)

// Set at build time with -ldflags "-X enum-mapper/internal/version.version=...".
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

// Info returns the build information, falling back to the module build info
// for fields not set at link time.
func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Application, Description, ""),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
