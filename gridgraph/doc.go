// SPDX-License-Identifier: MIT

// Package gridgraph models a 2D grid of cells joined by undirected unit links.
//
// What:
//
//   - Grid owns a flat, insertion-ordered collection of *Cell values.
//   - Links only ever join grid-adjacent cells (Manhattan distance exactly 1).
//   - Links are stored on both endpoints; the relation is always symmetric.
//   - Neighbor relations are stable NodeID indices into the owning Grid,
//     never raw pointers, so a Cell never owns another Cell.
//
// Why:
//
//   - Connectivity simulation: randomly wired lattices (see package builder).
//   - Route finding: the astar package walks Grid neighbor relations.
//
// Complexity:
//
//   - AddNode:              O(1) amortized.
//   - AddUndirectedEdge:    O(d) where d ≤ 4 (coordinate index + duplicate check).
//   - RemoveUndirectedEdge: O(d).
//   - ConnectedComponents:  O(V+E), Memory: O(V).
//
// Coordinate lookup goes through a (x,y) → NodeID index kept in step with
// AddNode, so edge mutation no longer scans the whole cell list.
//
// Errors:
//
//   - ErrRelationNotFound: removing a link between two present cells that are not linked.
//
// Invalid link requests (absent coordinates, non-adjacent pair, duplicate link)
// are silent no-ops and report false from AddUndirectedEdge.
//
// Concurrency:
//
//   - Grid is guarded by a sync.RWMutex: mutations are serialized, reads may
//     run in parallel (several searches over the same Grid are safe).
package gridgraph
