// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// These values are injected via ldflags for release binaries.
// They default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
