// Where: cmd/tagsmith/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scadworks/tagsmith/internal/app"
	"github.com/scadworks/tagsmith/internal/interaction"
	"github.com/scadworks/tagsmith/internal/scad"
)

// buildDependencies constructs all runtime dependencies required by the CLI:
// the real process runner, and a prompter only when stdout is a terminal so
// piped runs never block on interaction.
func buildDependencies() app.Dependencies {
	tty := isatty.IsTerminal(os.Stdout.Fd())

	deps := app.Dependencies{
		Out:         os.Stdout,
		Runner:      scad.ExecRunner{},
		LookupEnv:   os.LookupEnv,
		PlainOutput: !tty,
	}
	if tty {
		deps.Prompter = interaction.HuhPrompter{}
	}
	return deps
}
