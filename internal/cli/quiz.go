package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quietspot/internal/config"
	"quietspot/internal/quiz"
	"quietspot/internal/ui/quizui"
)

// runLiveQuiz is a test seam for running the Bubble Tea program.
var runLiveQuiz = defaultRunLiveQuiz

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		questionsPath := flags.String("questions", "", "Path to a question bank file (overrides the config)")
		uiMode := flags.String("ui-mode", "", "UI mode: auto, live, or plain (default: from config)")
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

		mode := *uiMode
		useNoColor := *noColor
		bank := strings.TrimSpace(*questionsPath)
		if bank == "" {
			resolved, err := resolveConfigPath(*configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
			cfg, err := config.Load(resolved)
			if err != nil {
				fmt.Fprintf(stderr, "Quiz failed:\n%s\n", err.Error())
				return ExitError
			}
			bank = resolveAgainst(config.RootFromConfigPath(resolved), cfg.Quiz.QuestionsPath)
			if mode == "" {
				mode = cfg.UI.Mode
			}
			if cfg.UI.NoColor {
				useNoColor = true
			}
		}

		spec, err := quiz.LoadSpec(bank)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%s\n", err.Error())
			return ExitError
		}
		session := quiz.NewSession(spec.Questions)

		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if decision.useLive {
			if err := runLiveQuiz(session, quizui.Options{NoColor: useNoColor}, stdout); err != nil {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		if err := quizui.RunPlain(stdout, os.Stdin, session); err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// defaultRunLiveQuiz runs the full-screen quiz program.
func defaultRunLiveQuiz(session *quiz.Session, opts quizui.Options, stdout io.Writer) error {
	model, err := quizui.NewModel(session, opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if done, ok := final.(quizui.Model); ok && done.Err() != nil {
		return done.Err()
	}
	return nil
}
