// Command singine is the operational CLI for the graph-query engine.
//
// Subcommands mirror the engine's public surface: shortest-path runs a query
// and writes a JSON report, gen-id mints an identifier, status and
// migrate-check inspect the database, migrate applies pending schema
// versions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/singine"
)

const (
	exitError  = 1
	exitNoPath = 2
)

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "singine",
	Short:         "Shortest-path queries over a persisted similarity graph",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "singine.db", "path to the SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newShortestPathCmd(),
		newGenIDCmd(),
		newStatusCmd(),
		newMigrateCmd(),
		newMigrateCheckCmd(),
	)
}

func newLogger() *singine.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return singine.NewJSONLogger(level)
}

func openEngine() (*singine.Engine, error) {
	return singine.Open(dbPath, singine.WithLogger(newLogger()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitError)
	}
}
