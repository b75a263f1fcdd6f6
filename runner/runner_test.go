package runner_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/config"
	"github.com/katalvlaran/supernode/core"
	"github.com/katalvlaran/supernode/ga"
	"github.com/katalvlaran/supernode/loader"
	"github.com/katalvlaran/supernode/runner"
	"github.com/katalvlaran/supernode/store"
)

func experiments(n int) []config.Experiment {
	exps := make([]config.Experiment, n)
	for i := range exps {
		exps[i] = config.Defaults()
		exps[i].Name = fmt.Sprintf("unit-%d", i)
	}
	return exps
}

func TestQueue_EachUnitOnce(t *testing.T) {
	q := runner.NewQueue(experiments(200))
	var (
		mu   sync.Mutex
		seen = map[int]int{}
		wg   sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				u, ok := q.Pop()
				if !ok {
					return
				}
				mu.Lock()
				seen[u.Index]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 200)
	for i, c := range seen {
		assert.Equal(t, 1, c, "unit %d", i)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestDistributor_FailuresAreIsolated(t *testing.T) {
	boom := errors.New("boom")
	var calls int32
	exec := runner.ExecutorFunc(func(_ context.Context, u runner.Unit, _ logrus.FieldLogger) (runner.Outcome, error) {
		atomic.AddInt32(&calls, 1)
		switch u.Index % 5 {
		case 1:
			return runner.Outcome{}, boom
		case 3:
			panic("bad unit")
		}
		return runner.Outcome{Summary: ga.Summary{BestFitness: u.Index}}, nil
	})

	out := runner.New(exec, runner.WithWorkers(3)).Run(context.Background(), runner.NewQueue(experiments(20)))
	require.Len(t, out, 20)
	assert.EqualValues(t, 20, atomic.LoadInt32(&calls))
	for i, o := range out {
		assert.Equal(t, i, o.Unit.Index, "outcomes ordered by unit")
		assert.True(t, o.Worker >= 1 && o.Worker <= 3)
		switch i % 5 {
		case 1:
			assert.True(t, errors.Is(o.Err, boom))
		case 3:
			var pe *runner.PanicError
			assert.True(t, errors.As(o.Err, &pe))
		default:
			assert.NoError(t, o.Err)
			assert.Equal(t, i, o.Summary.BestFitness)
		}
	}
}

func TestDistributor_RejectedUnitsAreReportedNotRun(t *testing.T) {
	bad := errors.New("line 3: population")
	q := runner.NewQueue(experiments(2))
	q.Push(config.Experiment{Name: "bad.txt"}, bad)
	q.Push(experiments(1)[0], nil)
	require.Equal(t, 4, q.Len())

	var calls int32
	exec := runner.ExecutorFunc(func(_ context.Context, u runner.Unit, _ logrus.FieldLogger) (runner.Outcome, error) {
		atomic.AddInt32(&calls, 1)
		assert.NoError(t, u.Err)
		return runner.Outcome{}, nil
	})
	out := runner.New(exec, runner.WithWorkers(2)).Run(context.Background(), q)

	require.Len(t, out, 4)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	assert.Equal(t, 2, out[2].Unit.Index)
	assert.Equal(t, "bad.txt", out[2].Unit.Experiment.Label())
	assert.True(t, errors.Is(out[2].Err, bad))
	for _, i := range []int{0, 1, 3} {
		assert.NoError(t, out[i].Err)
	}
}

func TestDistributor_CancelledLeavesQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := runner.ExecutorFunc(func(context.Context, runner.Unit, logrus.FieldLogger) (runner.Outcome, error) {
		return runner.Outcome{}, nil
	})
	q := runner.NewQueue(experiments(4))
	out := runner.New(exec, runner.WithWorkers(0)).Run(ctx, q)
	assert.Empty(t, out)
	_, ok := q.Pop()
	assert.True(t, ok, "unclaimed units stay queued")
}

func TestSeedFor(t *testing.T) {
	u := runner.Unit{Index: 3, Experiment: config.Experiment{Seed: 42}}
	assert.Equal(t, int64(42), runner.SeedFor(u, 7))

	u.Experiment.Seed = 0
	a := runner.SeedFor(u, 7)
	assert.Equal(t, a, runner.SeedFor(u, 7))
	u.Index = 4
	assert.NotEqual(t, a, runner.SeedFor(u, 7))
}

func writeGraph(t *testing.T, dir, name string, ctor builder.Constructor) {
	t.Helper()
	g, err := builder.BuildGraph(ctor)
	require.NoError(t, err)
	require.NoError(t, loader.WriteFile(filepath.Join(dir, name), g))
}

func TestPipeline_EndToEnd(t *testing.T) {
	dataDir := t.TempDir()
	resultsDir := filepath.Join(t.TempDir(), "results")
	writeGraph(t, dataDir, "cycle.dat", builder.Cycle(12))

	db, err := store.Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	defer db.Close()

	good := config.Defaults()
	good.Source, good.OutPrefix = "cycle.dat", "cycle"
	good.Chromosome, good.Elites = 3, 2
	good.Population, good.Generations, good.Runs = 6, 3, 2
	good.Crossover, good.Mutation = 0.7, 0.3

	missing := good
	missing.Source, missing.OutPrefix = "nope.dat", "nope"

	invalid := good
	invalid.Elites = 6 // not below population

	pipeline := &runner.Pipeline{DataDir: dataDir, ResultsDir: resultsDir, Archive: db, BaseSeed: 9}
	out := runner.New(pipeline, runner.WithWorkers(2)).Run(context.Background(),
		runner.NewQueue([]config.Experiment{good, missing, invalid}))
	require.Len(t, out, 3)

	ok := out[0]
	require.NoError(t, ok.Err)
	assert.Equal(t, 12, ok.GraphSize)
	assert.Equal(t, runner.SeedFor(ok.Unit, 9), ok.Params.Seed)
	assert.FileExists(t, ok.ResultFile)
	assert.NotZero(t, ok.ArchiveID)
	assert.Len(t, ok.Summary.RunBest, 2)

	replayed, err := ga.Replay(mustLoad(t, filepath.Join(dataDir, "cycle.dat")), ok.Summary.BestChromosome)
	require.NoError(t, err)
	assert.Equal(t, ok.Summary.BestFitness, replayed.Fitness)

	assert.Error(t, out[1].Err)
	assert.True(t, errors.Is(out[2].Err, config.ErrInvalidConfig))

	recs, err := db.List(store.Filter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, ok.Summary.BestChromosome, recs[0].BestChromosome)
	assert.Equal(t, ok.ResultFile, recs[0].ResultFile)

	entries, err := os.ReadDir(resultsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "failed units leave no result file")
}

func TestPipeline_MissingSource(t *testing.T) {
	e := config.Defaults()
	e.OutPrefix = "x"
	_, err := (&runner.Pipeline{}).Execute(context.Background(), runner.Unit{Experiment: e}, logrus.New())
	assert.True(t, errors.Is(err, config.ErrMissingSource))
}

func TestPipeline_WarnsOnDisconnectedSource(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "halves.dat"), []byte("6\n0 1\n1 2\n3 4\n4 5\n"), 0o600))

	e := config.Defaults()
	e.Source, e.OutPrefix = "halves.dat", "halves"
	e.Chromosome, e.Elites, e.Population, e.Generations = 2, 1, 4, 2
	e.Seed = 7

	logger, hook := logtest.NewNullLogger()
	o, err := (&runner.Pipeline{DataDir: dataDir}).Execute(context.Background(), runner.Unit{Experiment: e}, logger)
	require.NoError(t, err)
	assert.Equal(t, 6, o.GraphSize)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "source graph is disconnected" {
			warned = true
			assert.Equal(t, 2, entry.Data["components"])
		}
	}
	assert.True(t, warned)
}

func mustLoad(t *testing.T, path string) *core.ContractedGraph {
	t.Helper()
	g, err := loader.ReadFile(path)
	require.NoError(t, err)
	return g
}
