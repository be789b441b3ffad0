// Where: internal/generator/generator.go
// What: Per-request STL generation pipeline.
// Why: Render the script, invoke the engine, and classify the outcome per request.
package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/scadworks/tagsmith/internal/records"
	"github.com/scadworks/tagsmith/internal/scad"
)

// DefaultTimeout bounds a single engine invocation.
const DefaultTimeout = 60 * time.Second

// Generator turns one request into one model file in OutputDir.
type Generator struct {
	Tool      string
	OutputDir string
	Timeout   time.Duration
	Runner    scad.CommandRunner
}

// Generate renders the script for req, writes it next to the target model
// file, and invokes the engine on it. On success the intermediate script is
// removed; on failure it is left in place for diagnosis. Failures never
// propagate as errors: every condition is folded into the Outcome so one
// bad request cannot stop the run.
func (g *Generator) Generate(ctx context.Context, req records.Request) Outcome {
	safeName := scad.SafeName(req.Name)
	scriptPath := filepath.Join(g.OutputDir, "temp_"+safeName+".scad")
	modelPath := filepath.Join(g.OutputDir, safeName+".stl")

	content, err := scad.RenderNametag(req.Name, req.Params)
	if err != nil {
		return failure(ReasonFilesystem, err.Error())
	}
	if err := os.WriteFile(scriptPath, []byte(content), 0o644); err != nil {
		return failure(ReasonFilesystem, err.Error())
	}

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := g.Runner.RunOutput(runCtx, g.Tool, "-o", modelPath, scriptPath)
	if err != nil {
		return failure(classify(runCtx, err), strings.TrimSpace(string(output)))
	}

	if _, err := os.Stat(modelPath); err != nil {
		return failure(ReasonFilesystem, "model file was not created")
	}
	if err := os.Remove(scriptPath); err != nil {
		return failure(ReasonFilesystem, err.Error())
	}
	return success(modelPath)
}

// classify maps an invocation error onto a failure reason. The deadline is
// checked first: a killed process surfaces as a generic exec error.
func classify(ctx context.Context, err error) FailureReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ReasonTimeout
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrPermission) {
		return ReasonToolMissing
	}
	return ReasonNonZeroExit
}
