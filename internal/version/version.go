// Package version reports the build identity of the mpibridge tooling.
package version

import "github.com/hsiuhsiu/mpibridge-go/internal/manifest"

// Populated at build time via -ldflags "-X".
var (
	Version = "v0.0.0-in-progress"
	Commit  = "unknown"
)

// ToolVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func ToolVersion() string {
	return Version
}

// ManifestVersion returns the version of the embedded symbol table, or 0 if
// it does not load.
func ManifestVersion() int {
	m, err := manifest.Load()
	if err != nil {
		return 0
	}
	return m.Version
}
