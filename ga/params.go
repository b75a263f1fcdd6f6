package ga

import (
	"fmt"
	"strings"
)

// minRepairAttempts is the floor of the default repair bound.
const minRepairAttempts = 64

// Params is the resolved parameter set of one experiment.
type Params struct {
	Strategy         Kind
	PopulationSize   int
	Generations      int
	Runs             int
	ChromosomeLength int
	EliteCount       int
	TournamentSize   int
	MaxDistance      int
	CrossoverRate    float64
	MutationRate     float64
	DegreeSelectRate float64
	Seed             int64

	// ReseedPerRun restarts the random stream from Seed at every run, so all
	// runs do identical work.
	ReseedPerRun bool

	// SaveTransform enables the transform map in the fitness cache.
	SaveTransform bool

	// MaxRepairAttempts bounds random-root retries; 0 means max(64, 4·N).
	MaxRepairAttempts int
}

// RepairAttempts resolves MaxRepairAttempts for an n-vertex graph.
func (p Params) RepairAttempts(n int) int {
	if p.MaxRepairAttempts > 0 {
		return p.MaxRepairAttempts
	}
	if 4*n > minRepairAttempts {
		return 4 * n
	}

	return minRepairAttempts
}

// Validate checks p against an n-vertex graph and reports every problem at once.
func (p Params) Validate(n int) error {
	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	_, kindErr := ParseKind(string(p.Strategy))
	check(kindErr == nil, "strategy %q unknown", p.Strategy)
	check(n >= 2, "graph has %d vertices, need at least 2", n)
	check(p.PopulationSize >= 1, "population %d < 1", p.PopulationSize)
	check(p.Generations >= 1, "generations %d < 1", p.Generations)
	check(p.Runs >= 1, "runs %d < 1", p.Runs)
	check(p.ChromosomeLength >= 1, "chromosome length %d < 1", p.ChromosomeLength)
	check(n < 2 || p.ChromosomeLength <= n-1, "chromosome length %d exceeds %d possible merges", p.ChromosomeLength, n-1)
	check(p.EliteCount >= 1 && p.EliteCount < p.PopulationSize,
		"elite count %d outside [1, population)", p.EliteCount)
	check(p.TournamentSize >= 1 && p.TournamentSize <= p.PopulationSize,
		"tournament %d outside [1, population]", p.TournamentSize)
	check(p.MaxDistance >= 1, "max distance %d < 1", p.MaxDistance)
	check(p.CrossoverRate >= 0 && p.CrossoverRate <= 1, "crossover rate %g outside [0,1]", p.CrossoverRate)
	check(p.MutationRate >= 0 && p.MutationRate <= 1, "mutation rate %g outside [0,1]", p.MutationRate)
	check(p.DegreeSelectRate >= 0 && p.DegreeSelectRate <= 1, "degree select rate %g outside [0,1]", p.DegreeSelectRate)
	check(p.MaxRepairAttempts >= 0, "repair attempts %d < 0", p.MaxRepairAttempts)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(problems, "; "))
	}

	return nil
}
