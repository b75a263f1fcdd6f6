package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names.
const (
	EnvSeed    = "SUPERNODE_SEED"
	EnvOutDir  = "SUPERNODE_OUT_DIR"
	EnvWorkers = "SUPERNODE_WORKERS"
	EnvStore   = "SUPERNODE_STORE"
)

// Env holds process-level overrides. Zero values mean "not set".
type Env struct {
	Seed    int64
	HasSeed bool
	OutDir  string
	Workers int
	Store   string
}

// LoadEnv reads overrides from envFile (if non-empty and present) and the
// process environment. Real environment variables win over the file.
func LoadEnv(envFile string) (Env, error) {
	vars := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			vars, err = godotenv.Read(envFile)
			if err != nil {
				return Env{}, errors.Wrapf(err, "failed to read env file %s", envFile)
			}
		}
	}
	for _, k := range []string{EnvSeed, EnvOutDir, EnvWorkers, EnvStore} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	return parseEnv(vars)
}

func parseEnv(vars map[string]string) (Env, error) {
	var env Env
	if v := vars[EnvSeed]; v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Env{}, errors.Wrapf(err, "invalid %s", EnvSeed)
		}
		env.Seed, env.HasSeed = seed, true
	}
	if v := vars[EnvWorkers]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Env{}, errors.Errorf("invalid %s %q: want a positive integer", EnvWorkers, v)
		}
		env.Workers = n
	}
	env.OutDir = vars[EnvOutDir]
	env.Store = vars[EnvStore]

	return env, nil
}

// Apply overrides the seed of e when the environment sets one.
func (env Env) Apply(e *Experiment) {
	if env.HasSeed {
		e.Seed = env.Seed
	}
}

// ResultsDir returns the directory for result files.
func (env Env) ResultsDir() string {
	if env.OutDir != "" {
		return env.OutDir
	}
	return DefaultResultsDir()
}

// StorePath returns the archive location.
func (env Env) StorePath() string {
	if env.Store != "" {
		return env.Store
	}
	return DefaultStorePath()
}

// DefaultResultsDir is $XDG_DATA_HOME/supernode/results.
func DefaultResultsDir() string {
	return filepath.Join(xdg.DataHome, "supernode", "results")
}

// DefaultStorePath is $XDG_DATA_HOME/supernode/archive.db.
func DefaultStorePath() string {
	return filepath.Join(xdg.DataHome, "supernode", "archive.db")
}
