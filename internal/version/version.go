// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Surface the VCS revision baked in at build time.
package version

import (
	"runtime/debug"
)

// String returns the version derived from build info: the short VCS
// revision, with a dirty suffix when the tree was modified. Falls back to
// "dev" when no build info is available.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision := "dev"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				revision = setting.Value[:7]
			} else if setting.Value != "" {
				revision = setting.Value
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if dirty && revision != "dev" {
		return revision + " (dirty)"
	}
	return revision
}
