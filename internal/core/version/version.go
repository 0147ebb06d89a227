// Package version reports build information stamped at link time
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Service is the name reported by the api binary
const Service = "salesboard-api"

// Info returns the build information
//
//	go build -ldflags "-X 'salesboard/internal/core/version.version=v0.1.0' \
//	  -X 'salesboard/internal/core/version.commit=abcd' -X 'salesboard/internal/core/version.date=2026-01-02'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
