// Package loader reads and writes graphs in the plain edge-list format:
//
//	4
//	0 1
//	0 2
//	1 2
//	2 3
//
// The first token is the vertex count; the rest are whitespace-separated
// endpoint pairs. Line breaks carry no meaning.
package loader
