package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/katalvlaran/supernode/ga"
)

var (
	// ErrInvalidConfig indicates an experiment that cannot be run as written.
	ErrInvalidConfig = stderrors.New("config: invalid experiment")

	// ErrMissingSource indicates an experiment without a source graph.
	ErrMissingSource = stderrors.New("config: source not specified")
)

// Test types.
const (
	TestTypePerformance = "PERFORMANCE" // seed once, runs differ
	TestTypeRuntime     = "RUNTIME"     // reseed every run, runs repeat the same work
)

// Experiment is one experiment as written in a file. Zero values mean
// "not given": Defaults fills them, Resolve validates them.
type Experiment struct {
	Name      string `yaml:"name,omitempty"`
	OutPrefix string `yaml:"outPrefix"`
	Source    string `yaml:"source"`

	Population  int     `yaml:"population"`
	Generations int     `yaml:"generations"`
	Runs        int     `yaml:"runs"`
	Tournament  int     `yaml:"tournament"`
	Crossover   float64 `yaml:"crossover"`
	Mutation    float64 `yaml:"mutation"`

	// Elitism is a rate in (0,1); otherwise Elites is taken as the count.
	Elitism float64 `yaml:"elitism"`
	Elites  int     `yaml:"elites"`

	// Compression is a rate in (0,1) of the graph size; otherwise Chromosome is the length.
	Compression float64 `yaml:"compression"`
	Chromosome  int     `yaml:"chromosome"`

	MaxDistance       int     `yaml:"maxDistance"`
	Type              string  `yaml:"type"`
	TestType          string  `yaml:"testType"`
	SaveTransform     bool    `yaml:"saveTransform"`
	DegreeSelectRate  float64 `yaml:"degreeSelectRate"`
	Seed              int64   `yaml:"seed"`
	Reseed            bool    `yaml:"reseedPerRun"`
	MaxRepairAttempts int     `yaml:"maxRepairAttempts,omitempty"`
}

// Defaults returns the values used for every field an experiment leaves unset.
func Defaults() Experiment {
	return Experiment{
		Runs:             1,
		Type:             string(ga.KindBFS),
		TestType:         TestTypePerformance,
		DegreeSelectRate: 1.0,
		MaxDistance:      1,
		Tournament:       2,
		Population:       10,
		Generations:      10,
	}
}

// ApplyDefaults fills zero fields of e from base.
func ApplyDefaults(e *Experiment, base Experiment) error {
	if err := mergo.Merge(e, base); err != nil {
		return fmt.Errorf("%w: defaults: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Label names the experiment for logs: Name, else OutPrefix, else Source.
func (e Experiment) Label() string {
	switch {
	case e.Name != "":
		return e.Name
	case e.OutPrefix != "":
		return e.OutPrefix
	default:
		return e.Source
	}
}

// ReseedPerRun reports whether every run restarts the random stream, either
// by reseedPerRun or by the RUNTIME test type.
func (e Experiment) ReseedPerRun() bool {
	return e.Reseed || strings.EqualFold(e.TestType, TestTypeRuntime)
}

// Resolve validates e against a graph of graphSize vertices and returns the
// search parameters. Every problem is reported in one ErrInvalidConfig.
func (e Experiment) Resolve(graphSize int) (ga.Params, error) {
	var problems []string
	fail := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if e.Source == "" {
		return ga.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingSource)
	}
	if e.OutPrefix == "" {
		fail("outPrefix not specified")
	}

	length := e.Chromosome
	if e.Compression > 0 && e.Compression < 1 {
		length = int(e.Compression * float64(graphSize))
	}
	if length < 1 {
		fail("chromosome length %d: use compression in (0,1) or chromosome >= 1", length)
	}

	if e.Population < 1 {
		fail("population %d < 1", e.Population)
	}
	if e.Generations < 1 {
		fail("generations %d < 1", e.Generations)
	}
	tournament := e.Tournament
	if tournament < 1 {
		fail("tournament %d < 1", tournament)
	} else if tournament > e.Population && e.Population >= 1 {
		tournament = e.Population
	}
	if e.MaxDistance < 1 {
		fail("maxDistance %d < 1", e.MaxDistance)
	}
	if e.Crossover < 0 || e.Crossover > 1 {
		fail("crossover %g outside [0,1]", e.Crossover)
	}
	if e.Mutation < 0 || e.Mutation > 1 {
		fail("mutation %g outside [0,1]", e.Mutation)
	}

	elites := e.Elites
	if e.Elitism > 0 && e.Elitism < 1 {
		elites = int(e.Elitism * float64(e.Population))
	}
	if elites < 1 || elites >= e.Population {
		fail("elite count %d outside [1, population)", elites)
	}
	if e.Runs < 1 {
		fail("runs %d < 1", e.Runs)
	}
	kind, err := ga.ParseKind(e.Type)
	if err != nil {
		fail("type %q unknown", e.Type)
	}
	if e.DegreeSelectRate < 0 || e.DegreeSelectRate > 1 {
		fail("degreeSelectRate %g outside [0,1]", e.DegreeSelectRate)
	}
	if tt := strings.ToUpper(e.TestType); tt != TestTypePerformance && tt != TestTypeRuntime {
		fail("testType %q unknown", e.TestType)
	}

	if len(problems) > 0 {
		return ga.Params{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	p := ga.Params{
		Strategy:          kind,
		PopulationSize:    e.Population,
		Generations:       e.Generations,
		Runs:              e.Runs,
		ChromosomeLength:  length,
		EliteCount:        elites,
		TournamentSize:    tournament,
		MaxDistance:       e.MaxDistance,
		CrossoverRate:     e.Crossover,
		MutationRate:      e.Mutation,
		DegreeSelectRate:  e.DegreeSelectRate,
		Seed:              e.Seed,
		ReseedPerRun:      e.ReseedPerRun(),
		SaveTransform:     e.SaveTransform,
		MaxRepairAttempts: e.MaxRepairAttempts,
	}
	if err := p.Validate(graphSize); err != nil {
		return ga.Params{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return p, nil
}
