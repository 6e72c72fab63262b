// Package version exposes build identity stamped in at link time
package version

// Overridden with -ldflags, for example
// -X 'voicejournal/internal/core/version.version=v0.1.0'
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo is the build identity served by the meta endpoints
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build identity
func Info() BuildInfo {
	return BuildInfo{
		Service: "voicejournal-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
