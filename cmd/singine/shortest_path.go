package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hupe1980/singine"
	"github.com/hupe1980/singine/reportstore"
)

func newShortestPathCmd() *cobra.Command {
	var (
		src      string
		dst      string
		edgeType string
		runID    string
		output   string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "shortest-path",
		Short: "Find and persist the cheapest path between two nodes",
		Long: `Loads the edge snapshot, runs the shortest-path search and, when a path
exists, persists the result and writes a JSON report. Exits with status 2
when the nodes are disconnected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}
			defer engine.Close()

			ctx := cmd.Context()
			res, found, err := engine.ShortestPath(ctx, src, dst,
				singine.WithEdgeType(edgeType),
				singine.WithRunID(runID),
			)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(os.Stderr, "no path between %s and %s\n", src, dst)
				os.Exit(exitNoPath)
			}

			dir, name := filepath.Split(output)
			if dir == "" {
				dir = "."
			}
			var storeOpts []reportstore.LocalOption
			if compress {
				storeOpts = append(storeOpts, reportstore.WithCompression())
			}
			store := reportstore.NewLocalStore(dir, storeOpts...)

			// Pretty-print for operators; the engine codec stays compact for storage.
			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			if err := store.Put(ctx, name, data); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			fmt.Printf("path: %v\ntotal weight: %g\nreport: %s\n", res.Path, res.TotalWeight, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&src, "src", "", "source node id")
	cmd.Flags().StringVar(&dst, "dst", "", "destination node id")
	cmd.Flags().StringVar(&edgeType, "edge-type", "", "restrict the snapshot to one edge type")
	cmd.Flags().StringVar(&runID, "run-id", "", "pipeline run correlation id")
	cmd.Flags().StringVar(&output, "output", "path-report.json", "report file path")
	cmd.Flags().BoolVar(&compress, "compress", false, "gzip the report")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}
