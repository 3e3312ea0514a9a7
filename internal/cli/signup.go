package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quietspot/internal/config"
	"quietspot/internal/store"
	"quietspot/internal/ui/signupui"
)

// signupForm is the part of the form model the command reads back after
// the program exits.
type signupForm interface {
	Submitted() bool
	Nickname() string
	Password() string
}

// runSignupForm is a test seam for running the interactive signup form.
var runSignupForm = defaultRunSignupForm

// runSignup builds the handler for the signup command.
func runSignup(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "Signup needs an interactive terminal.")
			return ExitError
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Signup failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Signup failed:\n%s\n", err.Error())
			return ExitError
		}

		db, err := store.Open(resolveAgainst(config.RootFromConfigPath(resolved), cfg.Database.Path))
		if err != nil {
			fmt.Fprintf(stderr, "Signup failed: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := store.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "Signup failed: apply schema: %v\n", err)
			return ExitError
		}

		useNoColor := *noColor || cfg.UI.NoColor
		form, err := runSignupForm(stdout, signupui.Options{NoColor: useNoColor})
		if err != nil {
			fmt.Fprintf(stderr, "Signup failed: %v\n", err)
			return ExitError
		}
		if !form.Submitted() {
			fmt.Fprintln(stderr, "Signup cancelled.")
			return ExitError
		}

		user, err := store.RegisterUser(context.Background(), db, form.Nickname(), form.Password())
		if err != nil {
			if errors.Is(err, store.ErrNicknameTaken) {
				fmt.Fprintln(stderr, "nickname already taken")
				return ExitError
			}
			fmt.Fprintf(stderr, "Signup failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Registered %s\n", user.Nickname)
		return ExitOK
	}
}

// defaultRunSignupForm runs the full-screen signup program.
func defaultRunSignupForm(stdout io.Writer, opts signupui.Options) (signupForm, error) {
	program := tea.NewProgram(signupui.NewModel(opts), tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}
	model, ok := final.(signupui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return model, nil
}
