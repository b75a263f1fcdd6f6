package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the YAML shape: either one inline experiment or a batch
// under experiments, with shared defaults. Experiments stay undecoded until
// the defaults are known so explicit zero values survive.
type document struct {
	Defaults    *yaml.Node  `yaml:"defaults,omitempty"`
	Experiments []yaml.Node `yaml:"experiments,omitempty"`
}

// Load reads the experiments defined in path. Files ending in .yaml or
// .yml are YAML; anything else is a legacy params file.
func Load(path string) ([]Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open experiment file %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		exps, err := ReadYAML(f)
		return exps, errors.WithMessagef(err, "file %s", path)
	default:
		exp, err := ReadLegacy(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "file %s", path)
		}
		return []Experiment{exp}, nil
	}
}

// ReadYAML decodes one experiment or a batch. Each experiment starts as a
// copy of the document defaults and overrides only the keys it sets; fields
// still empty afterwards come from Defaults().
func ReadYAML(in io.Reader) ([]Experiment, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(in).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, errors.Wrap(err, "failed to decode experiment yaml")
	}
	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode experiment yaml")
	}

	var base Experiment
	if doc.Defaults != nil {
		if err := doc.Defaults.Decode(&base); err != nil {
			return nil, errors.Wrap(err, "failed to decode defaults")
		}
	}

	nodes := doc.Experiments
	if len(nodes) == 0 {
		nodes = []yaml.Node{root}
	}
	out := make([]Experiment, 0, len(nodes))
	for i := range nodes {
		e := base
		if err := nodes[i].Decode(&e); err != nil {
			return nil, errors.Wrapf(err, "failed to decode experiment %d", i+1)
		}
		if err := ApplyDefaults(&e, Defaults()); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

var legacySplit = regexp.MustCompile(`[\s:=]+`)

// ReadLegacy parses the line-oriented params format: one "key value" pair per
// line, separated by whitespace, ':' or '='. Lines that do not split into
// exactly two tokens and unknown keys are ignored.
func ReadLegacy(in io.Reader) (Experiment, error) {
	var e Experiment
	sc := bufio.NewScanner(in)
	for line := 1; sc.Scan(); line++ {
		tokens := legacySplit.Split(strings.TrimSpace(sc.Text()), -1)
		if len(tokens) != 2 || tokens[0] == "" {
			continue
		}
		if err := setLegacy(&e, tokens[0], tokens[1]); err != nil {
			return Experiment{}, fmt.Errorf("%w: line %d: %v", ErrInvalidConfig, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Experiment{}, errors.Wrap(err, "failed to read params")
	}
	if err := ApplyDefaults(&e, Defaults()); err != nil {
		return Experiment{}, err
	}

	return e, nil
}

func setLegacy(e *Experiment, key, value string) error {
	var err error
	switch key {
	case "outPrefix":
		e.OutPrefix = value
	case "source":
		e.Source = value
	case "type":
		e.Type = strings.ToUpper(value)
	case "testType":
		e.TestType = strings.ToUpper(value)
	case "saveTransform":
		e.SaveTransform = strings.EqualFold(value, "true")
	case "population":
		e.Population, err = strconv.Atoi(value)
	case "generations":
		e.Generations, err = strconv.Atoi(value)
	case "runs":
		e.Runs, err = strconv.Atoi(value)
	case "tournament":
		e.Tournament, err = strconv.Atoi(value)
	case "elites":
		e.Elites, err = strconv.Atoi(value)
	case "chromosome":
		e.Chromosome, err = strconv.Atoi(value)
	case "maxDistance":
		e.MaxDistance, err = strconv.Atoi(value)
	case "crossover":
		e.Crossover, err = strconv.ParseFloat(value, 64)
	case "mutation":
		e.Mutation, err = strconv.ParseFloat(value, 64)
	case "elitism":
		e.Elitism, err = strconv.ParseFloat(value, 64)
	case "compression":
		e.Compression, err = strconv.ParseFloat(value, 64)
	case "degreeSelectRate":
		e.DegreeSelectRate, err = strconv.ParseFloat(value, 64)
	case "seed":
		e.Seed, err = strconv.ParseInt(value, 10, 64)
	case "reseedPerRun":
		e.Reseed = strings.EqualFold(value, "true")
	case "maxRepairAttempts":
		e.MaxRepairAttempts, err = strconv.Atoi(value)
	case "cache":
		// neighbourhood cache no longer exists
	}
	if err != nil {
		return fmt.Errorf("%s=%q: %v", key, value, err)
	}

	return nil
}
