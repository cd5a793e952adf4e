// Command bhandari finds k link-disjoint minimum-total-cost paths in a
// weighted edge-list file, and exports graphs as CPLEX solver input.
//
// Usage:
//
//	bhandari paths FILE START TO K [--undirected]
//	bhandari export FILE SOURCE TARGET [-k N] [-o OUT.dat] [--undirected]
//
// See the disjoint package for the algorithm, edgelist for the file syntax.
package main

import "os"

func main() {
	// Execute the root command; cobra prints the failure itself.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
