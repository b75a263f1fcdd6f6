// SPDX-License-Identifier: MIT

// Package config loads experiment definitions and resolves them into
// ga.Params for one graph.
//
// Two file formats are accepted. YAML files (.yaml, .yml) hold either one
// experiment or a batch:
//
//	defaults:
//	  population: 50
//	  generations: 100
//	experiments:
//	  - source: ecoli1.dat
//	    outPrefix: ecoli1
//	    compression: 0.1
//
// Any other extension is read as a legacy params file with one "key value"
// pair per line.
//
// Fields left at zero take Defaults(). Resolve then checks the experiment
// against the graph size and reports every violation in one ErrInvalidConfig.
package config
