// Package report writes search progress as a CSV result file: one header
// line describing the experiment, one line of column names, then one row per
// generation.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/supernode/ga"
)

// Columns are the result file column names, in row order.
var Columns = []string{
	"Run",
	"Generation",
	"Time to Complete",
	"Global Best Fitness",
	"Global Average Fitness",
	"Global Worst Fitness",
	"Run Best Fitness",
	"Run Average Fitness",
	"Run Worst Fitness",
	"Generation Best Fitness",
	"Generation Average Fitness",
	"Generation Worst Fitness",
	"Global Best Chromosome",
	"Run Best Chromosome",
	"Generation Best Chromosome",
	"Fitness Cache Accesses",
	"Post-Transform Fitness Cache Accesses",
	"Transform Map Uses",
	"Evaluations",
	"Fitness Cache Size",
}

// Meta describes the experiment a result file belongs to.
type Meta struct {
	Source      string
	OutPrefix   string
	GraphSize   int
	Compression float64 // as configured; 0 when the length was given directly
	Params      ga.Params
}

// FileName builds the result file name from the experiment parameters:
//
//	<prefix>_cmp<C>_dst<D>_mut<M>_xvr<X>_run<R>_gen<G>_type<T>_st-<bool>[_degr<rate>]_<seed>.csv
//
// Rates are truncated percentages. The degree rate is only present for the
// degree strategies.
func FileName(m Meta) string {
	p := m.Params
	var b strings.Builder
	b.WriteString(m.OutPrefix)
	fmt.Fprintf(&b, "_cmp%d", int(m.Compression*100))
	fmt.Fprintf(&b, "_dst%d", p.MaxDistance)
	fmt.Fprintf(&b, "_mut%d", int(p.MutationRate*100))
	fmt.Fprintf(&b, "_xvr%d", int(p.CrossoverRate*100))
	fmt.Fprintf(&b, "_run%d", p.Runs)
	fmt.Fprintf(&b, "_gen%d", p.Generations)
	fmt.Fprintf(&b, "_type%s", p.Strategy)
	fmt.Fprintf(&b, "_st-%t", p.SaveTransform)
	if p.Strategy == ga.KindDegree || p.Strategy == ga.KindDegree2 {
		b.WriteString("_degr" + formatFloat(p.DegreeSelectRate))
	}
	fmt.Fprintf(&b, "_%d.csv", p.Seed)

	return b.String()
}

// HeaderLine is the first line of a result file.
func HeaderLine(m Meta) string {
	p := m.Params
	ratio := func(a, b int) float64 {
		if b == 0 {
			return 0
		}
		return float64(a) / float64(b)
	}
	fields := []string{
		"Source: " + m.Source,
		"Type: " + string(p.Strategy),
		"Seed: " + strconv.FormatInt(p.Seed, 10),
		"Graph Size: " + strconv.Itoa(m.GraphSize),
		"Population Size: " + strconv.Itoa(p.PopulationSize),
		fmt.Sprintf("Compression Rate: %.5f%%", ratio(p.ChromosomeLength, m.GraphSize)),
		"Chromosome Size: " + strconv.Itoa(p.ChromosomeLength),
		fmt.Sprintf("Elitism Rate: %.5f%%", ratio(p.EliteCount, p.PopulationSize)),
		"Elite Size: " + strconv.Itoa(p.EliteCount),
		"Tournament Size: " + strconv.Itoa(p.TournamentSize),
		fmt.Sprintf("Mutation Rate: %.5f%%", p.MutationRate),
		fmt.Sprintf("Crossover Rate: %.5f%%", p.CrossoverRate),
		"Maximum Distance: " + strconv.Itoa(p.MaxDistance),
		"Run Span: " + strconv.Itoa(p.Runs),
		"Generation Span: " + strconv.Itoa(p.Generations),
		"Save Transformations: " + strconv.FormatBool(p.SaveTransform),
		"Degree Select Rate: " + formatFloat(p.DegreeSelectRate),
		"Reseed Per Run: " + strconv.FormatBool(p.ReseedPerRun),
	}

	return strings.Join(fields, "; ")
}

// Row renders rec in Columns order.
func Row(rec ga.GenerationRecord) []string {
	return []string{
		strconv.Itoa(rec.Run),
		strconv.Itoa(rec.Generation),
		strconv.FormatInt(rec.Elapsed.Milliseconds(), 10),
		strconv.Itoa(rec.GlobalBest),
		formatFloat(rec.GlobalAverage),
		strconv.Itoa(rec.GlobalWorst),
		strconv.Itoa(rec.RunBest),
		formatFloat(rec.RunAverage),
		strconv.Itoa(rec.RunWorst),
		strconv.Itoa(rec.GenBest),
		formatFloat(rec.GenAverage),
		strconv.Itoa(rec.GenWorst),
		rec.GlobalBestChromosome,
		rec.RunBestChromosome,
		rec.GenBestChromosome,
		strconv.Itoa(rec.Stats.CacheAccesses),
		strconv.Itoa(rec.Stats.PostTransformCacheAccesses),
		strconv.Itoa(rec.Stats.TransformMapUses),
		strconv.Itoa(rec.Stats.Evaluations),
		strconv.Itoa(rec.CacheSize),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSVSink is a ga.RecordSink writing rows to a CSV stream. Each row is
// flushed as it is written so a partial file survives an interrupted run.
type CSVSink struct {
	w      *csv.Writer
	closer io.Closer
	path   string
	rows   int
}

var _ ga.RecordSink = (*CSVSink)(nil)

// NewCSVSink writes the header and column lines to w and returns a sink for
// the rows.
func NewCSVSink(w io.Writer, m Meta) (*CSVSink, error) {
	if _, err := io.WriteString(w, HeaderLine(m)+"\n"); err != nil {
		return nil, errors.Wrap(err, "failed to write result header")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return nil, errors.Wrap(err, "failed to write result columns")
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to write result columns")
	}

	return &CSVSink{w: cw}, nil
}

// Create opens dir/FileName(m), creating dir when needed, and returns a sink
// writing to it. Close releases the file.
func Create(dir string, m Meta) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create result directory %s", dir)
	}
	path := filepath.Join(dir, FileName(m))
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create result file %s", path)
	}
	sink, err := NewCSVSink(f, m)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sink.closer, sink.path = f, path

	return sink, nil
}

// Record writes one row.
func (s *CSVSink) Record(rec ga.GenerationRecord) error {
	if err := s.w.Write(Row(rec)); err != nil {
		return errors.Wrap(err, "failed to write result row")
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return errors.Wrap(err, "failed to flush result row")
	}
	s.rows++

	return nil
}

// Rows reports how many rows were written.
func (s *CSVSink) Rows() int { return s.rows }

// Path is the file behind the sink, empty for NewCSVSink.
func (s *CSVSink) Path() string { return s.path }

// Close flushes and closes the underlying file, if the sink owns one.
func (s *CSVSink) Close() error {
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
		s.closer = nil
	}

	return errors.Wrap(err, "failed to close result file")
}
