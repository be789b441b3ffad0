// Where: internal/app/generate.go
// What: Generate command, the batch STL pipeline.
// Why: Locate the engine once, read the CSV once, then process row by row.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/scadworks/tagsmith/internal/config"
	"github.com/scadworks/tagsmith/internal/generator"
	"github.com/scadworks/tagsmith/internal/records"
	"github.com/scadworks/tagsmith/internal/scad"
	"github.com/scadworks/tagsmith/internal/ui"
)

// EnvOpenSCAD names the environment variable that prepends an engine
// candidate, the same way the --openscad flag does.
const EnvOpenSCAD = "TAGSMITH_OPENSCAD"

const (
	defaultCSVFile   = "names.csv"
	defaultOutputDir = "generated_nametags"
)

// generateSettings is the fully resolved configuration for one run.
// Precedence: flags > environment > config file > compiled-in defaults.
type generateSettings struct {
	CSVPath   string
	OutputDir string
	Override  string
	Timeout   time.Duration
	Defaults  config.ParameterSet
}

func resolveGenerateSettings(cli CLI, deps Dependencies) (generateSettings, error) {
	cfgPath := cli.Generate.Config
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = config.DefaultConfigFile
	}

	var cfg config.FileConfig
	var err error
	if explicit {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, _, err = config.LoadOptional(cfgPath)
	}
	if err != nil {
		return generateSettings{}, err
	}

	envOverride, _ := deps.LookupEnv(EnvOpenSCAD)

	timeout := cli.Generate.Timeout
	if timeout <= 0 && cfg.Engine.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Engine.TimeoutSeconds * float64(time.Second))
	}
	if timeout <= 0 {
		timeout = generator.DefaultTimeout
	}

	return generateSettings{
		CSVPath:   firstNonEmpty(cli.Generate.CSV, cfg.Paths.CSV, defaultCSVFile),
		OutputDir: firstNonEmpty(cli.Generate.Output, cfg.Paths.OutputDir, defaultOutputDir),
		Override:  firstNonEmpty(cli.Generate.OpenSCAD, envOverride, cfg.Engine.Path),
		Timeout:   timeout,
		Defaults:  cfg.MergedDefaults(),
	}, nil
}

// runGenerate executes the whole pipeline. Fatal conditions (missing CSV,
// no engine, unparsable input, zero valid rows) abort before the loop;
// per-record failures are counted and never stop subsequent records.
func runGenerate(cli CLI, deps Dependencies, out io.Writer) int {
	console := &ui.Console{Out: out, ASCII: deps.PlainOutput}

	console.Rule()
	console.Printf("Automatic Nametag STL Generator")
	console.Rule()
	console.Blank()

	settings, err := resolveGenerateSettings(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := os.Stat(settings.CSVPath); err != nil {
		console.Printf("Error: CSV file '%s' not found!", settings.CSVPath)
		console.Blank()
		console.Printf("Please create a CSV file with at least a 'name' column,")
		console.Printf("or run: tagsmith init")
		return 1
	}

	ctx := context.Background()
	locator := scad.Locator{Runner: deps.Runner, Override: settings.Override}
	toolPath, err := locator.Locate(ctx)
	if err != nil {
		console.Printf("Error: OpenSCAD not found!")
		console.Blank()
		console.Printf("Please install OpenSCAD from: https://openscad.org/downloads.html")
		console.Printf("Or ensure it's in your system PATH.")
		return 1
	}
	console.Printf("Found OpenSCAD at: %s", toolPath)

	if err := os.MkdirAll(settings.OutputDir, 0o755); err != nil {
		return exitWithError(out, err)
	}
	console.Printf("Output directory: %s", settings.OutputDir)
	console.Blank()

	requests, err := records.Read(settings.CSVPath, settings.Defaults)
	if err != nil {
		console.Printf("Error reading CSV file: %v", err)
		return 1
	}
	if len(requests) == 0 {
		console.Printf("Error: No valid names found in CSV file!")
		return 1
	}

	console.Printf("Found %d name(s) to process", len(requests))
	console.Blank()

	gen := &generator.Generator{
		Tool:      toolPath,
		OutputDir: settings.OutputDir,
		Timeout:   settings.Timeout,
		Runner:    deps.Runner,
	}

	successful := 0
	failed := 0
	for i, req := range requests {
		console.Beginf("[%d/%d] Generating STL for: %s... ", i+1, len(requests), req.Name)
		outcome := gen.Generate(ctx, req)
		switch {
		case outcome.Success:
			console.OK("Success")
			successful++
		case outcome.Reason == generator.ReasonTimeout:
			console.Fail("Timeout")
			failed++
		default:
			console.Fail("Failed")
			if outcome.Detail != "" {
				console.Detail("Error: " + outcome.Detail)
			}
			failed++
		}
	}

	outputPath := settings.OutputDir
	if abs, err := filepath.Abs(settings.OutputDir); err == nil {
		outputPath = abs
	}

	console.Blank()
	console.Rule()
	console.Printf("Generation Complete!")
	console.Printf("Successful: %d", successful)
	console.Printf("Failed: %d", failed)
	console.Printf("Output location: %s", outputPath)
	console.Rule()
	return 0
}
