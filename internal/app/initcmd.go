// Where: internal/app/initcmd.go
// What: Init command, example CSV scaffolding.
// Why: Give first-time users a valid input file to edit.
package app

import (
	"io"
	"os"

	"github.com/scadworks/tagsmith/internal/ui"
)

const exampleCSV = `name,text_size
John Smith,
Jane Doe,10
Alice Johnson,
`

// runInit writes the example CSV. Overwriting an existing file requires
// --force or an interactive confirmation; a non-interactive session without
// --force refuses.
func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	console := &ui.Console{Out: out, ASCII: deps.PlainOutput}

	target := firstNonEmpty(cli.Init.CSV, defaultCSVFile)

	if _, err := os.Stat(target); err == nil && !cli.Init.Force {
		if deps.Prompter == nil {
			console.Fail("Refusing to overwrite " + target + " (use --force)")
			return 1
		}
		confirmed, err := deps.Prompter.Confirm("Overwrite existing " + target + "?")
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			console.Printf("Cancelled.")
			return 0
		}
	}

	if err := os.WriteFile(target, []byte(exampleCSV), 0o644); err != nil {
		return exitWithError(out, err)
	}

	console.OK("Wrote example CSV: " + target)
	console.Detail("Edit it and run: tagsmith generate")
	return 0
}
