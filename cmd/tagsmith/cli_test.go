// Where: cmd/tagsmith/cli_test.go
// What: Tests for dependency wiring.
// Why: The real runner must always be wired, prompter only on a TTY.
package main

import (
	"testing"

	"github.com/scadworks/tagsmith/internal/scad"
)

func TestBuildDependencies(t *testing.T) {
	deps := buildDependencies()

	if deps.Out == nil {
		t.Fatalf("expected stdout writer")
	}
	if _, ok := deps.Runner.(scad.ExecRunner); !ok {
		t.Fatalf("expected exec runner, got %T", deps.Runner)
	}
	if deps.LookupEnv == nil {
		t.Fatalf("expected env lookup")
	}
	// Test binaries never run on a TTY, so interaction must be disabled
	// and output degraded to ASCII markers.
	if deps.Prompter != nil {
		t.Fatalf("expected nil prompter off-TTY")
	}
	if !deps.PlainOutput {
		t.Fatalf("expected plain output off-TTY")
	}
}
