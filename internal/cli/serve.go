package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"quietspot/internal/config"
	"quietspot/internal/quiz"
	"quietspot/internal/store"
	"quietspot/internal/webserver"
)

// serveSite is a test seam for running the web server.
var serveSite = webserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		addr := flags.String("addr", "", "Address to listen on (overrides the config)")
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

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed:\n%s\n", err.Error())
			return ExitError
		}
		root := config.RootFromConfigPath(resolved)

		spec, err := quiz.LoadSpec(resolveAgainst(root, cfg.Quiz.QuestionsPath))
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed:\n%s\n", err.Error())
			return ExitError
		}

		db, err := store.Open(resolveAgainst(root, cfg.Database.Path))
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := store.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "Serve failed: apply schema: %v\n", err)
			return ExitError
		}

		listenAddr := cfg.Server.Addr
		if *addr != "" {
			listenAddr = *addr
		}

		serverCfg := webserver.Config{
			Addr:            listenAddr,
			DB:              db,
			Questions:       spec.Questions,
			LimiterRequests: cfg.Limiter.Requests,
			LimiterWindow:   time.Duration(cfg.Limiter.WindowSeconds) * time.Second,
		}
		fmt.Fprintf(stdout, "Serving quietspot at http://%s\n", serverCfg.Addr)
		if err := serveSite(context.Background(), serverCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
