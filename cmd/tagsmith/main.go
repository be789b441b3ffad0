// Where: cmd/tagsmith/main.go
// What: CLI entrypoint.
// Why: Execute tagsmith commands with configured dependencies.
package main

import (
	"os"

	"github.com/scadworks/tagsmith/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
