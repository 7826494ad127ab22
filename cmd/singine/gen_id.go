package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newGenIDCmd() *cobra.Command {
	var (
		namespace string
		hint      string
	)

	cmd := &cobra.Command{
		Use:   "gen-id",
		Short: "Mint a URN-addressable identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			rec, err := engine.GenerateID(cmd.Context(), namespace, hint)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "entity", "identifier namespace")
	cmd.Flags().StringVar(&hint, "hint", "", "human-readable hint embedded in the id")

	return cmd
}
