// Where: internal/scad/locator.go
// What: OpenSCAD executable discovery.
// Why: Resolve a working engine once per run before any generation starts.
package scad

import (
	"context"
	"errors"
	"time"
)

// ErrEngineNotFound is returned when no candidate answers the version probe.
var ErrEngineNotFound = errors.New("openscad executable not found")

// DefaultProbeTimeout bounds a single version probe.
const DefaultProbeTimeout = 5 * time.Second

// defaultCandidates are the platform-typical install locations, probed in
// order. The first candidate that answers `--version` with exit 0 wins.
var defaultCandidates = []string{
	"openscad",
	"/usr/bin/openscad",
	"/usr/local/bin/openscad",
	`C:\Program Files\OpenSCAD\openscad.exe`,
	`C:\Program Files (x86)\OpenSCAD\openscad.exe`,
	"/Applications/OpenSCAD.app/Contents/MacOS/OpenSCAD",
}

// Locator probes candidate OpenSCAD locations.
type Locator struct {
	Runner CommandRunner
	// Override is probed before the built-in candidates when non-empty,
	// typically from --openscad, TAGSMITH_OPENSCAD, or the config file.
	Override     string
	ProbeTimeout time.Duration
}

// Candidates returns the probe order for this locator.
func (l Locator) Candidates() []string {
	if l.Override == "" {
		return defaultCandidates
	}
	out := make([]string, 0, len(defaultCandidates)+1)
	out = append(out, l.Override)
	return append(out, defaultCandidates...)
}

// Probe runs a version query against one candidate. A nil error means the
// candidate is a usable engine.
func (l Locator) Probe(ctx context.Context, candidate string) error {
	timeout := l.ProbeTimeout
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := l.Runner.RunOutput(probeCtx, candidate, "--version")
	return err
}

// Locate returns the first candidate that answers the version probe.
// Per-candidate failures (not installed, timed out, not executable) are
// swallowed; ErrEngineNotFound is returned only after exhausting the list.
func (l Locator) Locate(ctx context.Context) (string, error) {
	for _, candidate := range l.Candidates() {
		if err := l.Probe(ctx, candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrEngineNotFound
}
