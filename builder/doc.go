// SPDX-License-Identifier: MIT

// Package builder constructs randomly wired square grids for package gridgraph.
//
// The package offers:
//
//   - RandomGridGraph(n, opts...): an n×n grid, values y*n+x in row-major
//     order, where every orthogonal neighbor pair is linked with probability p
//     (default 0.5).
//   - LatticeGridGraph(n): the same grid with every orthogonal link present.
//   - Functional options (BuilderOption) for the random source and policy:
//     WithSeed, WithRand, WithCoin, WithEdgeProbability, WithRevisitPairs.
//
// Guarantees:
//
//   - No hidden globals: randomness is always supplied by the caller.
//     A stochastic build without WithSeed, WithRand or WithCoin fails with
//     ErrNeedRandSource.
//   - Deterministic trial order: cells in row-major order, candidates per cell
//     in the order value-1, value+1, value+n, value-n. A fixed seed therefore
//     always yields the same grid.
//   - Candidates are bounds-checked and must share the row (±1) or the column
//     (±n) with the current cell, so links never wrap around grid edges.
//   - Option constructors panic on meaningless input; builders return
//     sentinel errors wrapped with the method name and never panic.
//
// Complexity: O(n²) time, O(n²) memory for the grid itself.
package builder
