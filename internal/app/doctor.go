// Where: internal/app/doctor.go
// What: Doctor command, the engine discovery report.
// Why: Show which install locations were probed and which one answered.
package app

import (
	"context"
	"io"

	"github.com/scadworks/tagsmith/internal/scad"
	"github.com/scadworks/tagsmith/internal/ui"
)

// runDoctor probes every candidate location and reports the outcome of each,
// then the resolved path. Exits 1 when no candidate answers.
func runDoctor(cli CLI, deps Dependencies, out io.Writer) int {
	console := &ui.Console{Out: out, ASCII: deps.PlainOutput}

	envOverride, _ := deps.LookupEnv(EnvOpenSCAD)
	locator := scad.Locator{
		Runner:   deps.Runner,
		Override: firstNonEmpty(cli.Doctor.OpenSCAD, envOverride),
	}

	ctx := context.Background()
	console.Printf("Probing OpenSCAD locations:")

	resolved := ""
	for _, candidate := range locator.Candidates() {
		if err := locator.Probe(ctx, candidate); err != nil {
			console.Item(candidate, "not usable")
			continue
		}
		console.Item(candidate, "ok")
		if resolved == "" {
			resolved = candidate
		}
	}

	console.Blank()
	if resolved == "" {
		console.Fail("No working OpenSCAD installation found")
		console.Detail("Install it from: https://openscad.org/downloads.html")
		return 1
	}
	console.OK("Using: " + resolved)
	return 0
}
