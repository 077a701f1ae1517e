// Package version provides build information for the polyglot binaries
package version

// Service is the name reported by the API
const Service = "polyglot-api"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information
// set via -ldflags "-X 'polyglot/internal/core/version.version=v0.1.0'
// -X 'polyglot/internal/core/version.commit=abcd' -X 'polyglot/internal/core/version.date=2026-10-14'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders a one line version banner for the CLI
func String() string {
	return version + " (" + commit + ", " + date + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
