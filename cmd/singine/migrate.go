package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/singine/migrate"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			results, err := migrate.Apply(cmd.Context(), engine.Store().DB(), dir, newLogger().Logger)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		},
	}

	cmd.Flags().StringVar(&dir, "migrations", "migrations", "directory holding V*.sql files")

	return cmd
}

func newMigrateCheckCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate-check",
		Short: "Report migration state without applying anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			results, err := migrate.Check(cmd.Context(), engine.Store().DB(), dir)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return err
			}

			for _, r := range results {
				if r.Status != "applied" {
					os.Exit(exitError)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "migrations", "migrations", "directory holding V*.sql files")

	return cmd
}
