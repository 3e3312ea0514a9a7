// Package cli implements the quietspot command line interface.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quietspot <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quietspot <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .quietspot.yml with starter questions and venues", []string{
		"quietspot init [--config <path>]",
	}, runInit),
	command("validate", "Validate the config and question bank", []string{
		"quietspot validate [--config <path>]",
	}, runValidate),
	command("quiz", "Run the noise tolerance quiz in the terminal", []string{
		"quietspot quiz [--config <path>] [--questions <path>] [--ui-mode auto|live|plain]",
	}, runQuiz),
	command("check", "Evaluate a password against the signup checklist", []string{
		"quietspot check <password>",
	}, runCheck),
	command("signup", "Register an account through the interactive signup form", []string{
		"quietspot signup [--config <path>] [--no-color]",
	}, runSignup),
	command("ingest", "Load the venues fixture into the database", []string{
		"quietspot ingest [--config <path>] [--fixture <path>]",
	}, runIngest),
	command("serve", "Run the quietspot web server", []string{
		"quietspot serve [--config <path>] [--addr <host:port>]",
	}, runServe),
}
