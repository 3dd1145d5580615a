// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// impl_random_grid.go: RandomGridGraph(n) and LatticeGridGraph(n).
//
// Model:
//   • n×n cells added row-major (y asc, then x asc) with Value = y*n + x.
//   • Per cell, candidates value-1, value+1, value+n, value-n, in that order.
//   • A candidate survives when 0 ≤ v < n*n and it shares the row (±1) or
//     the column (±n) with the cell.
//   • An unlinked surviving pair gets one coin flip; heads adds the link.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices); n == 0 yields an empty Grid and
//     n == 1 a single unlinked Cell, neither needing a random source.
//   • 0 < p < 1 requires WithSeed/WithRand or WithCoin (else ErrNeedRandSource).
//   • Never panics at runtime.
//
// Complexity:
//   • Time: O(n²) cells + O(n²) candidate checks.
//   • Space: O(n²) for the Grid.
//
// Determinism:
//   • Stable cell order and stable trial order; fixed seed ⇒ identical grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

const (
	methodRandomGrid  = "RandomGridGraph"
	methodLatticeGrid = "LatticeGridGraph"
	minGridSide       = 0
)

// RandomGridGraph builds an n×n Grid whose orthogonal neighbor pairs are
// linked at random. See the package documentation for the trial order.
func RandomGridGraph(n int, opts ...BuilderOption) (*gridgraph.Grid, error) {
	return buildGrid(methodRandomGrid, n, newBuilderConfig(opts...))
}

// LatticeGridGraph builds an n×n Grid with every orthogonal link present.
func LatticeGridGraph(n int) (*gridgraph.Grid, error) {
	return buildGrid(methodLatticeGrid, n, newBuilderConfig(WithEdgeProbability(probMax)))
}

func buildGrid(method string, n int, cfg builderConfig) (*gridgraph.Grid, error) {
	// 1) Validate parameters before touching any state.
	if n < minGridSide {
		return nil, builderErrorf(method, "n=%d (must be ≥ %d)", ErrTooFewVertices, n, minGridSide)
	}
	// A grid with fewer than two cells has no pair to draw.
	var flip func() bool
	if n > 1 {
		var err error
		if flip, err = cfg.flipper(method); err != nil {
			return nil, err
		}
	}

	// 2) Populate cells row-major; Value doubles as NodeID.
	g := gridgraph.NewGridWithCapacity(n * n)
	value := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.AddNode(x, y, value)
			value++
		}
	}

	// 3) Sample links.
	total := n * n
	cells := g.Nodes()
	for _, cell := range cells {
		for _, cand := range [4]int{cell.Value - 1, cell.Value + 1, cell.Value + n, cell.Value - n} {
			if cand < 0 || cand >= total {
				continue
			}
			other := cells[cand]
			horizontal := cand == cell.Value-1 || cand == cell.Value+1
			if horizontal && other.Y != cell.Y {
				continue // row wrap-around
			}
			if !horizontal && other.X != cell.X {
				continue
			}
			// Without revisits the pair was already drawn from its lower endpoint.
			if !cfg.revisit && cand < cell.Value {
				continue
			}
			if g.HasEdge(cell, other) {
				continue
			}
			if flip() && !g.AddUndirectedEdge(cell, other) {
				return nil, fmt.Errorf("%s: link (%d,%d)-(%d,%d) rejected", method, cell.X, cell.Y, other.X, other.Y)
			}
		}
	}

	return g, nil
}
