// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/scadworks/tagsmith/internal/interaction"
	"github.com/scadworks/tagsmith/internal/scad"
	"github.com/scadworks/tagsmith/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables swapping the process runner and prompter
// in tests.
type Dependencies struct {
	Out       io.Writer
	Runner    scad.CommandRunner
	Prompter  interaction.Prompter
	LookupEnv func(string) (string, bool)
	// PlainOutput degrades unicode result markers to ASCII, set when
	// stdout is not a terminal.
	PlainOutput bool
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Generate GenerateCmd `cmd:"" help:"Generate STL files from a CSV of names"`
	Doctor   DoctorCmd   `cmd:"" help:"Probe OpenSCAD install locations"`
	Init     InitCmd     `cmd:"" help:"Write an example names CSV"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type GenerateCmd struct {
	CSV      string        `help:"Path to the input CSV (default: names.csv)"`
	Output   string        `short:"o" help:"Output directory (default: generated_nametags)"`
	Config   string        `short:"c" help:"Path to tagsmith.yml (default: probe ./tagsmith.yml)"`
	OpenSCAD string        `name:"openscad" help:"OpenSCAD executable to try first"`
	Timeout  time.Duration `help:"Per-file generation timeout (default: 60s)"`
}

type DoctorCmd struct {
	OpenSCAD string `name:"openscad" help:"OpenSCAD executable to try first"`
}

type InitCmd struct {
	CSV   string `help:"Path of the CSV to create (default: names.csv)"`
	Force bool   `help:"Overwrite an existing file without asking"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// arguments and dispatches to the matching handler. Invoking the binary with
// no arguments runs generate with defaults, matching the original tool.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}

	if len(args) == 0 {
		args = []string{"generate"}
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	switch ctx.Command() {
	case "generate":
		return runGenerate(cli, deps, out)
	case "doctor":
		return runDoctor(cli, deps, out)
	case "init":
		return runInit(cli, deps, out)
	case "version":
		fmt.Fprintln(out, version.String())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
