// SPDX-License-Identifier: MIT

// Package runner distributes experiment units over a fixed pool of workers.
//
// Each worker pops one unit at a time from a shared Queue and executes it to
// completion. Units share nothing: every execution loads its own graph and
// owns its own search loop, random source and fitness cache. A failing unit
// is logged and skipped; it never stops the other workers.
package runner

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/supernode/ga"
)

// Outcome is the result of one unit.
type Outcome struct {
	Unit       Unit
	Params     ga.Params
	GraphSize  int
	Summary    ga.Summary
	ResultFile string
	ArchiveID  uint64
	Err        error
	Worker     int
	Elapsed    time.Duration
}

// Executor runs one unit.
type Executor interface {
	Execute(ctx context.Context, u Unit, log logrus.FieldLogger) (Outcome, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, u Unit, log logrus.FieldLogger) (Outcome, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, u Unit, log logrus.FieldLogger) (Outcome, error) {
	return f(ctx, u, log)
}

// Option configures a Distributor.
type Option func(*Distributor)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Distributor) {
		if l != nil {
			d.log = l
		}
	}
}

// WithWorkers sets the pool size; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(d *Distributor) {
		d.workers = n
	}
}

// Distributor is the worker pool.
type Distributor struct {
	workers int
	exec    Executor
	log     logrus.FieldLogger
}

// DefaultWorkers is the pool size when none is configured.
const DefaultWorkers = 6

// New returns a pool executing units with exec.
func New(exec Executor, opts ...Option) *Distributor {
	discard := logrus.New()
	discard.Out = io.Discard
	d := &Distributor{workers: DefaultWorkers, exec: exec, log: discard}
	for _, opt := range opts {
		opt(d)
	}
	if d.workers < 1 {
		d.log.Debugf("workers (%d) below minimum, setting to 1", d.workers)
		d.workers = 1
	}
	d.log = d.log.WithField("module", "runner")

	return d
}

// Run drains q and returns one outcome per claimed unit, ordered by unit
// index. Units not yet claimed when ctx is done are left in the queue.
func (d *Distributor) Run(ctx context.Context, q *Queue) []Outcome {
	results := make(chan Outcome, q.Len())

	var g errgroup.Group
	for w := 1; w <= d.workers; w++ {
		worker := w
		g.Go(func() error {
			wlog := d.log.WithField("worker", worker)
			for ctx.Err() == nil {
				u, ok := q.Pop()
				if !ok {
					return nil
				}
				results <- d.execute(ctx, worker, u, wlog)
			}
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	out := make([]Outcome, 0, q.Len())
	for o := range results {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit.Index < out[j].Unit.Index })

	return out
}

func (d *Distributor) execute(ctx context.Context, worker int, u Unit, wlog logrus.FieldLogger) Outcome {
	ulog := wlog.WithField("experiment", u.Experiment.Label())
	if u.Err != nil {
		ulog.WithError(u.Err).Warn("unit skipped")
		return Outcome{Unit: u, Worker: worker, Err: u.Err}
	}
	ulog.Info("unit started")
	start := time.Now()

	o, err := d.runSafely(ctx, u, ulog)
	o.Unit, o.Worker, o.Err = u, worker, err
	o.Elapsed = time.Since(start)
	if err != nil {
		ulog.WithError(err).Warn("unit skipped")
		return o
	}
	ulog.WithField("best", o.Summary.BestFitness).
		WithField("elapsed", o.Elapsed.Round(time.Millisecond)).
		Info("unit finished")

	return o
}

// runSafely turns a panic inside one unit into that unit's error.
func (d *Distributor) runSafely(ctx context.Context, u Unit, log logrus.FieldLogger) (o Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return d.exec.Execute(ctx, u, log)
}

// PanicError reports a unit that panicked.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("runner: unit panicked: %v", e.Value)
}
