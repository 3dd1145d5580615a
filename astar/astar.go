// SPDX-License-Identifier: MIT
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Search runs the accumulated-score best-first search from source to dest
// over g and reconstructs the route.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. source and dest must be non-nil (ErrNilCell).
//  3. source and dest must be g's own instances (ErrCellNotInGrid).
//
// An unreachable destination is not an error: Result.Found is false and
// Result.Path is empty.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Search(g *gridgraph.Grid, source, dest *gridgraph.Cell, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if source == nil || dest == nil {
		return Result{}, ErrNilCell
	}
	if !g.Owns(source) {
		return Result{}, fmt.Errorf("%w: source (%d,%d)", ErrCellNotInGrid, source.X, source.Y)
	}
	if !g.Owns(dest) {
		return Result{}, fmt.Errorf("%w: dest (%d,%d)", ErrCellNotInGrid, dest.X, dest.Y)
	}

	r := newRunner(g, dest, cfg)
	return r.run(source)
}

// Path returns the route from source to dest, or an empty slice when dest is
// unreachable or the inputs are invalid.
func Path(g *gridgraph.Grid, source, dest *gridgraph.Cell) []*gridgraph.Cell {
	res, err := Search(g, source, dest)
	if err != nil || !res.Found {
		return []*gridgraph.Cell{}
	}
	return res.Path
}

// runner holds the mutable state of a single Search call.
type runner struct {
	g       *gridgraph.Grid
	dest    *gridgraph.Cell
	options Options

	score   map[gridgraph.NodeID]int              // recorded running score
	seq     map[gridgraph.NodeID]int              // recording order
	parent  map[gridgraph.NodeID]gridgraph.NodeID // ancestry, scoped to this run
	visited map[gridgraph.NodeID]bool             // expanded Cells
	pq      frontier

	expanded int
}

func newRunner(g *gridgraph.Grid, dest *gridgraph.Cell, cfg Options) *runner {
	return &runner{
		g:       g,
		dest:    dest,
		options: cfg,
		score:   make(map[gridgraph.NodeID]int),
		seq:     make(map[gridgraph.NodeID]int),
		parent:  make(map[gridgraph.NodeID]gridgraph.NodeID),
		visited: make(map[gridgraph.NodeID]bool),
		pq:      frontier{latestSeq: cfg.TieBreak == TieLastRecorded},
	}
}

func (r *runner) run(source *gridgraph.Cell) (Result, error) {
	r.record(source.ID(), 0)
	r.parent[source.ID()] = gridgraph.NoNode
	heap.Init(&r.pq)

	current := source
	for current != nil {
		if err := r.options.Ctx.Err(); err != nil {
			return Result{Expanded: r.expanded}, fmt.Errorf("astar: search cancelled: %w", err)
		}
		if current.ID() == r.dest.ID() {
			return Result{
				Path:     r.reconstruct(current.ID()),
				Found:    true,
				Score:    r.score[current.ID()],
				Expanded: r.expanded,
			}, nil
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w: %d", ErrExpansionLimit, r.expanded)
		}

		r.visited[current.ID()] = true
		r.expanded++
		base := r.score[current.ID()]
		// Expanded Cells are never rescored: with h ≥ 0 every candidate
		// exceeds base, and base is ≥ the score of any expanded Cell.
		for _, nb := range r.g.Neighbors(current) {
			h := r.options.Heuristic(nb, r.dest)
			if h < 0 {
				h = 0
			}
			cand := base + 1 + h
			if old, ok := r.score[nb.ID()]; !ok || cand < old {
				r.record(nb.ID(), cand)
				r.parent[nb.ID()] = current.ID()
			}
		}

		current = r.next()
	}

	return Result{Path: []*gridgraph.Cell{}, Expanded: r.expanded}, nil
}

// record stores score s for id, keeping its original recording order.
func (r *runner) record(id gridgraph.NodeID, s int) {
	seq, ok := r.seq[id]
	if !ok {
		seq = len(r.seq)
		r.seq[id] = seq
	}
	r.score[id] = s
	heap.Push(&r.pq, &frontierItem{id: id, score: s, seq: seq})
}

// next pops the best live frontier entry, or returns nil when none is left.
func (r *runner) next() *gridgraph.Cell {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*frontierItem)
		if r.visited[it.id] || it.score != r.score[it.id] {
			continue // stale
		}
		c, _ := r.g.Node(it.id)
		return c
	}
	return nil
}

// reconstruct walks parent links from dest back to the source, whose parent
// is NoNode.
func (r *runner) reconstruct(dest gridgraph.NodeID) []*gridgraph.Cell {
	var rev []*gridgraph.Cell
	for at := dest; at != gridgraph.NoNode; at = r.parent[at] {
		c, _ := r.g.Node(at)
		rev = append(rev, c)
	}
	path := make([]*gridgraph.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
