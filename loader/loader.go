// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: edge-list text reader and writer.
//
// Format: the first whitespace-separated token is the vertex count N; every
// following pair of integers is an undirected edge between 0-indexed vertices.
// Repeated and reversed pairs collapse into one edge.

package loader

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supernode/core"
)

// Sentinel errors for malformed input.
var (
	// ErrBadHeader indicates a missing, non-numeric or negative vertex count.
	ErrBadHeader = stderrors.New("loader: bad vertex count header")

	// ErrBadEdge indicates a non-numeric token, an out-of-range id or a dangling endpoint.
	ErrBadEdge = stderrors.New("loader: bad edge")
)

// Option configures Read.
type Option func(*options)

type options struct {
	log       logrus.FieldLogger
	graphOpts []core.Option
}

// WithLogger reports skipped self-loops and repeated edges to l at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithGraphOptions forwards core options to the graph being built.
func WithGraphOptions(opts ...core.Option) Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, opts...)
	}
}

// Read parses an edge list from r into a fresh ContractedGraph.
// Self-loops are skipped; everything else malformed is an error.
func Read(r io.Reader, opts ...Option) (*core.ContractedGraph, error) {
	cfg := options{log: discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "loader: read header")
		}
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, sc.Text())
	}

	g, err := core.NewGraph(n, cfg.graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	log := cfg.log.WithField("module", "loader")
	pair, dupes := 0, 0
	for sc.Scan() {
		from, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d: %q", ErrBadEdge, pair, sc.Text())
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: pair %d: missing endpoint after %d", ErrBadEdge, pair, from)
		}
		to, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d: %q", ErrBadEdge, pair, sc.Text())
		}

		seen := g.HasOriginalEdge(from, to)
		err = g.AddEdge(from, to)
		switch {
		case err == nil:
			if seen {
				dupes++
			}
		case stderrors.Is(err, core.ErrSelfLoop):
			log.Debugf("skipping self-loop on %d", from)
		default:
			return nil, fmt.Errorf("%w: pair %d: %v", ErrBadEdge, pair, err)
		}
		pair++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "loader: read edges")
	}
	if dupes > 0 {
		log.WithField("duplicates", dupes).Debug("ignored repeated edges")
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*core.ContractedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "loader: %s", path)
	}

	return g, nil
}

// Write emits g's original edges in the format Read accepts: N on the first
// line, then one "from to" pair per line ordered by (from, to).
func Write(w io.Writer, g *core.ContractedGraph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.Size()); err != nil {
		return errors.Wrap(err, "loader: write header")
	}
	for _, e := range g.OriginalEdges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
			return errors.Wrap(err, "loader: write edge")
		}
	}

	return errors.Wrap(bw.Flush(), "loader: flush")
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.ContractedGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "loader: create %s", path)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "loader: close %s", path)
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}
