// SPDX-License-Identifier: MIT

// Package astar finds a route between two Cells of a gridgraph.Grid with a
// best-first search guided by the Manhattan distance to the destination.
//
// The search keeps a running score per recorded Cell. Expanding a Cell c
// records every neighbor n with
//
//	score(n) = score(c) + 1 + h(n, dest)
//
// when n has no score yet or the candidate is strictly smaller. The heuristic
// term is therefore accumulated along the route instead of being added once
// as a separate priority: this is a greedy variant, not textbook A*, and the
// returned route is not guaranteed to have the fewest hops.
//
// The next Cell to expand is the unexpanded recorded Cell with the smallest
// score. Ties go to the Cell recorded first (TieFirstRecorded, default) or
// last (TieLastRecorded). Recording order is the order in which a Cell first
// received a score; later score improvements do not move it.
//
// Ancestry lives in a map owned by a single Search call. Cells are never
// mutated, so any number of searches may run over the same Grid at once.
//
// Outcomes:
//
//   - Route found: Result.Found, Result.Path = [source, …, dest].
//   - source == dest: Path = [source].
//   - Unreachable: Found == false, empty Path, nil error.
//
// Errors:
//
//   - ErrNilGrid, ErrNilCell, ErrCellNotInGrid: invalid inputs.
//   - ErrExpansionLimit: WithMaxExpansions budget exhausted.
//   - context errors from WithContext, wrapped.
//
// Complexity:
//
//   - Time:  O((V+E) log V) with a lazy-decrease-key min-heap.
//   - Space: O(V).
package astar
