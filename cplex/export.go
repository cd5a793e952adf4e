package cplex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bhandari/edgelist"
)

// missingDistance encodes "no link between this ordered pair" in the
// exported matrix, a convention of the downstream solver model.
const missingDistance = 999

// Sentinel errors returned by Export.
var (
	// ErrNoEdges indicates an empty edge list: there is nothing to export.
	ErrNoEdges = errors.New("cplex: edge list is empty")

	// ErrUnknownSource indicates a source name absent from the edge list.
	ErrUnknownSource = errors.New("cplex: source name not in edge list")

	// ErrUnknownTarget indicates a target name absent from the edge list.
	ErrUnknownTarget = errors.New("cplex: target name not in edge list")

	// ErrBadK indicates a requested path count below 1.
	ErrBadK = errors.New("cplex: K must be at least 1")
)

// Options configures an Export run.
//   - Source, Target: node names resolved against the edge list's index.
//   - K: the disjoint path count passed through to the solver model.
type Options struct {
	Source string
	Target string
	K      int
}

// Export writes edges as a CPLEX OPL ".dat" file to w.
//
// Node indices follow the sorted name order of edgelist.NewNameIndex, so
// the exported source/target indices agree with what the disjoint package
// would compute for the same input. Duplicate directed pairs keep the first
// occurrence's weight, matching core.NewGraph's tie-break; absent pairs are
// encoded as 999.
func Export(w io.Writer, edges []edgelist.Edge, opts Options) error {
	// 1) Validate inputs before producing any output.
	if len(edges) == 0 {
		return ErrNoEdges
	}
	if opts.K < 1 {
		return fmt.Errorf("%w: K=%d", ErrBadK, opts.K)
	}

	ix := edgelist.NewNameIndex(edges)
	src, ok := ix.IndexOf(opts.Source)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSource, opts.Source)
	}
	dst, ok := ix.IndexOf(opts.Target)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, opts.Target)
	}

	// 2) Fill the distance matrix: 999 everywhere a link is absent, the
	//    first occurrence's weight where one is present.
	n := ix.Len()
	matrix := make([][]int64, n)
	for i := range matrix {
		row := make([]int64, n)
		for j := range row {
			row[j] = missingDistance
		}
		matrix[i] = row
	}
	for _, e := range edges {
		from, _ := ix.IndexOf(e.From)
		to, _ := ix.IndexOf(e.To)
		if matrix[from][to] == missingDistance {
			matrix[from][to] = e.Weight
		}
	}

	// 3) Emit the declarations and the matrix.
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "n = %d;\n", n)
	fmt.Fprintf(bw, "source = %d;\n", src)
	fmt.Fprintf(bw, "target = %d;\n", dst)
	fmt.Fprintf(bw, "K = %d;\n", opts.K)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "distance=[")
	for _, row := range matrix {
		cells := make([]string, len(row))
		for j, d := range row {
			cells[j] = strconv.FormatInt(d, 10)
		}
		fmt.Fprintf(bw, "[%s],\n", strings.Join(cells, ", "))
	}
	fmt.Fprintln(bw, "];")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cplex: writing output: %w", err)
	}

	return nil
}
