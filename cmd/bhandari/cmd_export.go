package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bhandari/cplex"
	"github.com/katalvlaran/bhandari/edgelist"
)

// runExport loads the edge list and writes the CPLEX .dat rendition of it.
func runExport(cmd *cobra.Command, args []string) error {
	file, source, target := args[0], args[1], args[2]

	var loadOpts []edgelist.Option
	if undirected {
		loadOpts = append(loadOpts, edgelist.WithUndirected())
	}
	edges, err := edgelist.LoadFile(file, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading graph from file: %w", err)
	}
	logger.Debug("edges loaded", "file", file, "count", len(edges))

	out, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("creating %q: %w", exportOut, err)
	}
	defer out.Close()

	err = cplex.Export(out, edges, cplex.Options{Source: source, Target: target, K: exportK})
	if err != nil {
		return err
	}
	logger.Info("matrix exported", "path", exportOut, "k", exportK)

	return nil
}
