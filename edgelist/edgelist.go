package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors returned while parsing edge lines.
var (
	// ErrMissingFrom indicates a line with no starting node field.
	ErrMissingFrom = errors.New("edgelist: no starting node")

	// ErrMissingWeight indicates a line with no weight field.
	ErrMissingWeight = errors.New("edgelist: no weight")

	// ErrMissingTo indicates a line with no finish node field.
	ErrMissingTo = errors.New("edgelist: no finish node")

	// ErrBadWeight indicates a weight field that is not an integer.
	ErrBadWeight = errors.New("edgelist: weight is not an integer")

	// ErrUnknownNode indicates a node name absent from a NameIndex.
	ErrUnknownNode = errors.New("edgelist: node name not in index")
)

// Edge is a named weighted edge as read from an edge-list file, before
// name-to-index translation.
type Edge struct {
	// From is the starting node name.
	From string

	// To is the finish node name.
	To string

	// Weight is the edge cost.
	Weight int64
}

// Options configures edge-list loading.
//   - Undirected: emit each line as two opposite directed edges.
type Options struct {
	Undirected bool
}

// Option is a functional option for configuring Load and LoadFile.
type Option func(*Options)

// WithUndirected treats every input line as an undirected link, emitting
// the directed pair (from→to, to→from) with equal weight.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// DefaultOptions returns the defaults: directed input.
func DefaultOptions() Options {
	return Options{}
}

// ParseLine parses one edge line of the form "FROM WEIGHT TO".
// Fields are whitespace-separated; anything after TO is ignored.
func ParseLine(line string) (Edge, error) {
	parts := strings.Fields(line)
	if len(parts) < 1 {
		return Edge{}, ErrMissingFrom
	}
	if len(parts) < 2 {
		return Edge{}, ErrMissingWeight
	}
	if len(parts) < 3 {
		return Edge{}, ErrMissingTo
	}

	w, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %q", ErrBadWeight, parts[1])
	}

	return Edge{From: parts[0], To: parts[2], Weight: w}, nil
}

// Load reads an edge list from r, skipping blank lines and "//" comments.
// Parse failures carry the 1-based line number of the offending line.
func Load(r io.Reader, opts ...Option) ([]Edge, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	var edges []Edge
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		edges = append(edges, e)
		if cfg.Undirected {
			edges = append(edges, Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: reading input: %w", err)
	}

	return edges, nil
}

// LoadFile reads an edge list from the file at path. See Load.
func LoadFile(path string, opts ...Option) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: opening %q: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts...)
}
