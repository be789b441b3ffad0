// Where: internal/interaction/interaction.go
// What: Prompter contract for interactive commands.
// Why: Keep command logic testable without a real terminal.
package interaction

// Prompter asks the user for confirmation before destructive actions.
// A nil Prompter in the dependency set means the session is non-interactive.
type Prompter interface {
	Confirm(title string) (bool, error)
}
