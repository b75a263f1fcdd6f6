package ga

import "errors"

// Sentinel errors for the search package.
var (
	// ErrRepairExhausted indicates repair ran out of random-root attempts.
	ErrRepairExhausted = errors.New("ga: repair attempts exhausted")

	// ErrNoCandidates indicates no root with a non-empty locality was found while proposing a gene.
	ErrNoCandidates = errors.New("ga: no merge candidates")

	// ErrBadChromosomeText indicates text that is not of the form [(r,o),(r,o),...].
	ErrBadChromosomeText = errors.New("ga: malformed chromosome text")

	// ErrUnknownStrategy indicates a strategy name outside Kinds().
	ErrUnknownStrategy = errors.New("ga: unknown strategy")

	// ErrInvalidParams indicates Params failed validation.
	ErrInvalidParams = errors.New("ga: invalid parameters")
)
