package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(context.Background(), "test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--env-file", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateRunResultsReplay(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "wheel.dat")
	archive := filepath.Join(dir, "archive.db")
	results := filepath.Join(dir, "results")

	_, err := execute(t, "generate", "wheel", "--n", "10", "-o", graph)
	require.NoError(t, err)
	require.FileExists(t, graph)

	exp := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(exp, []byte(`
defaults:
  population: 6
  generations: 3
  elites: 1
  chromosome: 3
  crossover: 0.6
  mutation: 0.2
  seed: 5
experiments:
  - source: wheel.dat
    outPrefix: wheel-bfs
  - source: wheel.dat
    outPrefix: wheel-degree
    type: DEGREE
`), 0o600))

	out, err := execute(t, "run", exp, "--data-dir", dir, "--out-dir", results, "--store", archive, "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "wheel-bfs")
	assert.Contains(t, out, "wheel-degree")

	entries, err := os.ReadDir(results)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	out, err = execute(t, "results", "--store", archive, "--type", "degree")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, out)
	assert.Contains(t, lines[1], "wheel-degree")

	out, err = execute(t, "replay", graph, "[(0,1)]")
	require.NoError(t, err)
	assert.Contains(t, out, "supernodes: 9 of 10")
	assert.Contains(t, out, "components: 1")

	out, err = execute(t, "replay", graph, "[(0,1)]", "--dot")
	require.NoError(t, err)
	assert.Contains(t, out, "graph contracted {")
}

func TestRun_ReportsFailedUnits(t *testing.T) {
	dir := t.TempDir()
	params := filepath.Join(dir, "params.txt")
	require.NoError(t, os.WriteFile(params, []byte("outPrefix: x\nsource: missing.dat\nchromosome: 2\nelites: 1\n"), 0o600))

	out, err := execute(t, "run", params, "--out-dir", filepath.Join(dir, "r"), "--no-archive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 units failed")
	assert.Contains(t, out, "skipped")
}

func TestRun_BadFileSkipsOnlyItsUnit(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "r")
	_, err := execute(t, "generate", "cycle", "--n", "8", "-o", filepath.Join(dir, "cycle.dat"))
	require.NoError(t, err)

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte(
		"outPrefix: good\nsource: cycle.dat\npopulation: 4\ngenerations: 2\nchromosome: 2\nelites: 1\nseed: 3\n"), 0o600))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("outPrefix: bad\nsource: cycle.dat\npopulation abc\n"), 0o600))

	out, err := execute(t, "run", good, bad, "--data-dir", dir, "--out-dir", results, "--no-archive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 units failed")
	assert.Contains(t, out, "bad.txt")
	assert.Contains(t, out, "population")

	entries, err := os.ReadDir(results)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "good_"))
}

func TestGenerate_UnknownTopology(t *testing.T) {
	_, err := execute(t, "generate", "hypercube")
	assert.Error(t, err)
}

func TestResults_RejectsUnknownType(t *testing.T) {
	_, err := execute(t, "results", "--store", filepath.Join(t.TempDir(), "a.db"), "--type", "sideways")
	assert.Error(t, err)
}
