package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"quietspot/internal/config"
	"quietspot/internal/store"
)

// runIngest builds the handler for the ingest command.
func runIngest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		fixturePath := flags.String("fixture", "", "Path to a venues fixture file (overrides the config)")
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
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed:\n%s\n", err.Error())
			return ExitError
		}
		root := config.RootFromConfigPath(resolved)

		fixture := strings.TrimSpace(*fixturePath)
		if fixture == "" {
			fixture = strings.TrimSpace(cfg.Venues.FixturePath)
		}
		if fixture == "" {
			fmt.Fprintln(stderr, "Ingest failed: no venues fixture configured (set venues.fixture_path or pass --fixture)")
			return ExitUsage
		}

		loaded, err := store.LoadFixture(resolveAgainst(root, fixture))
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed:\n%s\n", err.Error())
			return ExitError
		}

		db, err := store.Open(resolveAgainst(root, cfg.Database.Path))
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := store.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "Ingest failed: apply schema: %v\n", err)
			return ExitError
		}

		count, err := store.IngestVenues(context.Background(), db, loaded.Venues)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed after %d venues: %v\n", count, err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Ingested %d venues into %s\n", count, cfg.Database.Path)
		return ExitOK
	}
}
