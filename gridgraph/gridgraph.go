// SPDX-License-Identifier: MIT
// Package gridgraph provides the Grid container: cell ownership, coordinate
// lookup and symmetric link management.
package gridgraph

import "fmt"

// NewGrid returns an empty Grid.
// Complexity: O(1).
func NewGrid() *Grid {
	return &Grid{index: make(map[Point]NodeID)}
}

// NewGridWithCapacity returns an empty Grid pre-sized for n cells.
// Complexity: O(1) time, O(n) memory.
func NewGridWithCapacity(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{
		cells: make([]*Cell, 0, n),
		index: make(map[Point]NodeID, n),
	}
}

// AddNode creates a Cell at (x, y) carrying value, with no links, and appends
// it to the Grid. Duplicate coordinates are not rejected here; lookups by
// coordinate keep resolving to the first Cell added at (x, y).
// Complexity: O(1) amortized.
func (g *Grid) AddNode(x, y, value int) *Cell {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := &Cell{X: x, Y: y, Value: value, id: NodeID(len(g.cells))}
	g.cells = append(g.cells, c)
	p := Point{X: x, Y: y}
	if _, taken := g.index[p]; !taken {
		g.index[p] = c.id
	}

	return c
}

// AddUndirectedEdge links the Grid-owned Cells found at the coordinates of
// first and second. The arguments only supply coordinates; they need not be
// the Grid's own instances.
//
// Nothing happens (false is returned) when either argument is nil, either
// coordinate is absent, the pair is not grid-adjacent, or the link exists.
// Complexity: O(1).
func (g *Grid) AddUndirectedEdge(first, second *Cell) bool {
	if first == nil || second == nil || !Adjacent(first, second) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	a, b, ok := g.resolvePair(first, second)
	if !ok || g.linked(a, b) {
		return false
	}
	a.neighbors = append(a.neighbors, b.id)
	b.neighbors = append(b.neighbors, a.id)
	g.edges++

	return true
}

// RemoveUndirectedEdge unlinks the Grid-owned Cells found at the coordinates
// of first and second, in both directions.
//
// A missing endpoint (nil, or coordinate not in the Grid) is a silent no-op.
// If both endpoints exist but are not linked, ErrRelationNotFound is returned
// and the Grid is left unchanged.
// Complexity: O(1).
func (g *Grid) RemoveUndirectedEdge(first, second *Cell) error {
	if first == nil || second == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	a, b, ok := g.resolvePair(first, second)
	if !ok {
		return nil
	}
	if !g.linked(a, b) {
		return fmt.Errorf("gridgraph: remove (%d,%d)-(%d,%d): %w", a.X, a.Y, b.X, b.Y, ErrRelationNotFound)
	}
	a.neighbors = dropID(a.neighbors, b.id)
	b.neighbors = dropID(b.neighbors, a.id)
	g.edges--

	return nil
}

// Nodes returns every Cell in insertion order. The slice is a fresh copy;
// the Cells themselves are shared with the Grid.
// Complexity: O(V).
func (g *Grid) Nodes() []*Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Len reports the number of Cells.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cells)
}

// EdgeCount reports the number of undirected links.
func (g *Grid) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Node returns the Cell with the given id.
func (g *Grid) Node(id NodeID) (*Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.cells) {
		return nil, false
	}
	return g.cells[id], true
}

// NodeAt returns the Cell registered at (x, y).
func (g *Grid) NodeAt(x, y int) (*Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[Point{X: x, Y: y}]
	if !ok {
		return nil, false
	}
	return g.cells[id], true
}

// Owns reports whether c is the Grid's own instance at its coordinate.
func (g *Grid) Owns(c *Cell) bool {
	if c == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return int(c.id) < len(g.cells) && c.id >= 0 && g.cells[c.id] == c
}

// Neighbors returns the Cells linked to c, in link order.
// The result is empty when c is nil or not owned by the Grid.
// Complexity: O(d).
func (g *Grid) Neighbors(c *Cell) []*Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsLocked(c) {
		return nil
	}
	out := make([]*Cell, 0, len(c.neighbors))
	for _, id := range c.neighbors {
		out = append(out, g.cells[id])
	}
	return out
}

// NeighborIDs returns a copy of c's link list as NodeIDs.
func (g *Grid) NeighborIDs(c *Cell) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsLocked(c) {
		return nil
	}
	out := make([]NodeID, len(c.neighbors))
	copy(out, c.neighbors)
	return out
}

// Degree reports how many links c has.
func (g *Grid) Degree(c *Cell) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsLocked(c) {
		return 0
	}
	return len(c.neighbors)
}

// HasEdge reports whether the Cells at the coordinates of a and b are linked.
func (g *Grid) HasEdge(a, b *Cell) bool {
	if a == nil || b == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ca, cb, ok := g.resolvePair(a, b)
	return ok && g.linked(ca, cb)
}

// Adjacent reports whether a and b are grid-adjacent: their coordinates
// differ by exactly 1 on one axis and by 0 on the other.
func Adjacent(a, b *Cell) bool {
	for _, d := range Offsets4 {
		if a.X+d[0] == b.X && a.Y+d[1] == b.Y {
			return true
		}
	}
	return false
}

// Manhattan returns |b.X-a.X| + |b.Y-a.Y|.
func Manhattan(a, b *Cell) int {
	return abs(b.X-a.X) + abs(b.Y-a.Y)
}

// resolvePair maps both coordinates to Grid-owned Cells. Caller holds mu.
func (g *Grid) resolvePair(first, second *Cell) (*Cell, *Cell, bool) {
	ia, okA := g.index[first.Point()]
	ib, okB := g.index[second.Point()]
	if !okA || !okB {
		return nil, nil, false
	}
	return g.cells[ia], g.cells[ib], true
}

// linked checks both directions so a half-present relation is never
// mistaken for a missing one. Caller holds mu.
func (g *Grid) linked(a, b *Cell) bool {
	return containsID(a.neighbors, b.id) || containsID(b.neighbors, a.id)
}

func (g *Grid) ownsLocked(c *Cell) bool {
	return c != nil && c.id >= 0 && int(c.id) < len(g.cells) && g.cells[c.id] == c
}

func containsID(ids []NodeID, id NodeID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// dropID removes the first occurrence of id, keeping the order of the rest.
func dropID(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
