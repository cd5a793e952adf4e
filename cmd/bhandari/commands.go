package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string // optional YAML defaults file
	undirected bool   // treat links as undirected
	verbose    bool   // debug logging
	exportK    int    // K declaration in the exported .dat file
	exportOut  string // output path for the exported .dat file

	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "bhandari",
		Short: "Minimum-cost link-disjoint paths in weighted graphs",
		Long: `bhandari computes k mutually link-disjoint paths of minimum total
cost between two nodes of a weighted edge-list graph, using the
Suurballe/Bhandari successive-shortest-paths algorithm. It can also
export a graph as CPLEX solver input for cross-checking.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logging first, so config loading is already observable.
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			// Optional YAML defaults; explicit flags always win.
			if configPath == "" {
				return nil
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("undirected") {
				undirected = cfg.Undirected
			}
			if cfg.K > 0 && !cmd.Flags().Changed("k") {
				exportK = cfg.K
			}
			logger.Debug("config loaded", "path", configPath, "undirected", undirected)

			return nil
		},
	}

	pathsCmd = &cobra.Command{
		Use:   "paths FILE START TO K",
		Short: "Find k link-disjoint minimum-total-cost paths",
		Args:  cobra.ExactArgs(4),
		RunE:  runPaths, // defined in cmd_paths.go
	}

	exportCmd = &cobra.Command{
		Use:   "export FILE SOURCE TARGET",
		Short: "Export the graph as a CPLEX OPL .dat file",
		Args:  cobra.ExactArgs(3),
		RunE:  runExport, // defined in cmd_export.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with flag defaults")
	rootCmd.PersistentFlags().BoolVarP(&undirected, "undirected", "u", false, "treat links as undirected")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	exportCmd.Flags().IntVarP(&exportK, "k", "k", 2, "K declaration for the solver model")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "graph.dat", "output file path")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(exportCmd)
}
