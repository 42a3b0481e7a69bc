// Package main implements the tasks-api command: an HTTP server exposing the
// tasks REST API, plus a migrate subcommand for managing the schema.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand is the same as running "serve".
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tasks-api",
		Short:        "REST API for managing a list of tasks",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|redo|reset|status|version]",
		Short: "Manage the database schema",
		Long: "Apply or inspect the embedded SQL migrations for the configured driver.\n" +
			"Defaults to \"up\" when no command is given.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrationCommands,
		RunE:      runMigrate,
	}
}
