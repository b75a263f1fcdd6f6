// Package dfs implements depth-first traversal and connected components
// over the current adjacency of a contracted graph.
//
// Walk explores from one start; Components covers every representative.
// Both visit representatives only, take neighbours in ascending order and
// use an explicit stack.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrStartOutOfRange   if start is not a vertex id.
//   - ctx.Err()            if the context is done.
//   - any error returned by OnVisit, wrapped.
package dfs
