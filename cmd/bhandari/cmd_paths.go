package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bhandari/core"
	"github.com/katalvlaran/bhandari/disjoint"
	"github.com/katalvlaran/bhandari/edgelist"
)

// runPaths loads the edge list, translates names to dense indices, runs the
// disjoint-path composer, and prints the resulting routes by name.
func runPaths(cmd *cobra.Command, args []string) error {
	file, start, to := args[0], args[1], args[2]
	k, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("k must be an integer, got %q", args[3])
	}

	// 1) Load the edge list (duplicating lines when undirected).
	var loadOpts []edgelist.Option
	if undirected {
		loadOpts = append(loadOpts, edgelist.WithUndirected())
	}
	edges, err := edgelist.LoadFile(file, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading edges from file: %w", err)
	}
	logger.Debug("edges loaded", "file", file, "count", len(edges))

	// 2) Translate the boundary: names to dense indices.
	ix := edgelist.NewNameIndex(edges)
	indexed, err := ix.IndexedEdges(edges)
	if err != nil {
		return err
	}
	src, ok := ix.IndexOf(start)
	if !ok {
		return fmt.Errorf("start node %q not in graph", start)
	}
	dst, ok := ix.IndexOf(to)
	if !ok {
		return fmt.Errorf("finish node %q not in graph", to)
	}

	g, err := core.NewGraph(ix.Len(), indexed)
	if err != nil {
		return err
	}
	logger.Debug("graph built", "nodes", ix.Len(), "edges", g.EdgeCount())

	// 3) Run the composer. A partial result is still worth showing before
	//    reporting the failure.
	res, err := disjoint.Paths(g, src, dst, k, disjoint.Options{Verbose: verbose})
	if err != nil {
		if errors.Is(err, disjoint.ErrKPathsUnreachable) && res != nil {
			printResult(cmd, ix, res)
		}

		return fmt.Errorf("getting disjoint paths: %w", err)
	}

	printResult(cmd, ix, res)

	return nil
}

// printResult renders each path as a name sequence plus the total cost.
func printResult(cmd *cobra.Command, ix *edgelist.NameIndex, res *disjoint.Result) {
	named, err := ix.NamePaths(res.Paths)
	if err != nil {
		// Result indices always come from the same index; reaching this
		// would be a programming error worth surfacing loudly.
		logger.Error("translating result paths", "error", err)

		return
	}
	for _, p := range named {
		cmd.Println(strings.Join(p, " -> "))
	}
	cmd.Printf("total cost: %d\n", res.TotalCost)
}
