// Package ga searches for merge sequences that shrink a graph while adding
// as few fake links as possible.
//
// A Gene (root, offset) merges root into (root+offset) mod N. A Chromosome is
// a fixed-length list of genes applied in order to a fresh copy of the
// original graph; its fitness is the copy's TotalFakeLinks, lower is better.
//
// Strategies (BFS, DEGREE, DEGREE2, FIXED, RANDOMADD, UNRESTRICTED) decide how
// genes are drawn and how invalid genes are repaired. A gene is invalid when
// another gene in the chromosome is identical or when its endpoints already
// share a supernode at the moment it is applied.
//
// SearchLoop runs elitism, tournament selection, two-point crossover and
// single-gene mutation for a number of generations and runs, caching fitness
// by chromosome text (see FormatGenes) and emitting a GenerationRecord per
// generation.
package ga
