package cli

import (
	"fmt"
	"io"

	"quietspot/internal/password"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) != 1 {
			fmt.Fprintln(stderr, "Expected exactly one <password> argument")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		checklist := password.Evaluate(args[0])
		for _, indicator := range checklist {
			glyph := "✗"
			if indicator.Satisfied {
				glyph = "✓"
			}
			fmt.Fprintf(stdout, "%s %s\n", glyph, indicator.Rule.Label)
		}
		fmt.Fprintf(stdout, "%d/%d rules satisfied\n", checklist.SatisfiedCount(), len(checklist))
		if !checklist.AllMet() {
			return ExitError
		}
		return ExitOK
	}
}
