// SPDX-License-Identifier: MIT
package astar

import "github.com/katalvlaran/gridroute/gridgraph"

// frontierItem is one (possibly stale) heap entry.
type frontierItem struct {
	id    gridgraph.NodeID
	score int
	seq   int // recording order of id, fixed at first score
}

// frontier is a min-heap of *frontierItem ordered by score, then by seq in
// the direction chosen by the tie-break policy. Stale entries are skipped
// on pop (lazy decrease-key).
type frontier struct {
	items     []*frontierItem
	latestSeq bool
}

func (f frontier) Len() int { return len(f.items) }

func (f frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.score != b.score {
		return a.score < b.score
	}
	if f.latestSeq {
		return a.seq > b.seq
	}
	return a.seq < b.seq
}

func (f frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x interface{}) { f.items = append(f.items, x.(*frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return it
}
