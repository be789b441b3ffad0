// Where: internal/scad/runner.go
// What: Subprocess runner abstraction for the OpenSCAD engine.
// Why: Keep locator and generator testable without spawning real processes.
package scad

import (
	"context"
	"os/exec"
)

// CommandRunner executes an external command and returns its combined output.
type CommandRunner interface {
	RunOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec implementation of CommandRunner.
type ExecRunner struct{}

func (ExecRunner) RunOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
