package runner

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supernode/dfs"
	"github.com/katalvlaran/supernode/ga"
	"github.com/katalvlaran/supernode/loader"
	"github.com/katalvlaran/supernode/report"
	"github.com/katalvlaran/supernode/store"
)

// Pipeline is the standard Executor: load the source graph, resolve the
// parameters, run the search into a result file and archive the summary.
type Pipeline struct {
	// DataDir resolves relative sources; empty means the working directory.
	DataDir string
	// ResultsDir receives one CSV file per unit; empty disables result files.
	ResultsDir string
	// Archive receives one record per finished unit when set.
	Archive *store.Store
	// BaseSeed seeds units that set none, mixed with the unit index.
	BaseSeed int64
}

var _ Executor = (*Pipeline)(nil)

// SeedFor returns the seed a unit runs with: its own when set, otherwise one
// derived from base and the unit index.
func SeedFor(u Unit, base int64) int64 {
	if u.Experiment.Seed != 0 {
		return u.Experiment.Seed
	}
	return ga.DeriveSeed(base, uint64(u.Index))
}

// Execute runs u to completion.
func (p *Pipeline) Execute(ctx context.Context, u Unit, log logrus.FieldLogger) (Outcome, error) {
	var o Outcome
	e := u.Experiment
	e.Seed = SeedFor(u, p.BaseSeed)

	src := e.Source
	if src != "" && p.DataDir != "" && !filepath.IsAbs(src) {
		src = filepath.Join(p.DataDir, src)
	}
	// without a source Resolve fails with ErrMissingSource
	if e.Source == "" {
		_, err := e.Resolve(0)
		return o, err
	}
	g, err := loader.ReadFile(src, loader.WithLogger(log))
	if err != nil {
		return o, err
	}
	o.GraphSize = g.Size()
	if !dfs.Connected(g) {
		comps, _ := dfs.Components(g)
		log.WithField("components", len(comps)).Warn("source graph is disconnected")
	}

	params, err := e.Resolve(g.Size())
	if err != nil {
		return o, err
	}
	o.Params = params

	opts := []ga.Option{ga.WithLogger(log)}
	var sink *report.CSVSink
	if p.ResultsDir != "" {
		sink, err = report.Create(p.ResultsDir, report.Meta{
			Source:      e.Source,
			OutPrefix:   e.OutPrefix,
			GraphSize:   g.Size(),
			Compression: e.Compression,
			Params:      params,
		})
		if err != nil {
			return o, err
		}
		defer sink.Close()
		o.ResultFile = sink.Path()
		opts = append(opts, ga.WithRecordSink(sink))
	}

	loop, err := ga.New(g, params, opts...)
	if err != nil {
		return o, err
	}
	o.Summary, err = loop.Run(ctx)
	if err != nil {
		return o, err
	}
	if sink != nil {
		if err := sink.Close(); err != nil {
			return o, err
		}
	}

	if p.Archive != nil {
		rec := store.FromSummary(e.Label(), e.Source, g.Size(), params, o.Summary)
		rec.ResultFile = o.ResultFile
		if err := p.Archive.Save(rec); err != nil {
			return o, errors.WithMessage(err, "archive")
		}
		o.ArchiveID = rec.ID
	}

	return o, nil
}
