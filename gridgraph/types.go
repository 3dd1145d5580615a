// SPDX-License-Identifier: MIT
// Package gridgraph defines core types and sentinel errors for grid graphs.
package gridgraph

import (
	"errors"
	"sync"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrRelationNotFound indicates a removal of a link that does not exist
	// between two cells that are both present in the Grid.
	ErrRelationNotFound = errors.New("gridgraph: relation not found")
)

// NodeID is the stable index of a Cell inside its owning Grid.
type NodeID int

// NoNode marks the absence of a Cell, e.g. the parent of a search source.
const NoNode NodeID = -1

// Point is an (X, Y) grid coordinate.
type Point struct {
	X, Y int
}

// Cell is a grid position with a payload value and its link relations.
//
// X, Y and Value are fixed at creation. The neighbor list holds NodeIDs into
// the owning Grid in the order the links were added.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Payload; the generator assigns y*n + x

	id        NodeID
	neighbors []NodeID
}

// ID returns the Cell's stable index within its owning Grid.
func (c *Cell) ID() NodeID {
	return c.id
}

// Point returns the Cell's coordinate.
func (c *Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Grid is an owning, insertion-ordered collection of Cells with symmetric
// unit links between grid-adjacent Cells.
//
// mu guards cells, index and every Cell's neighbor list.
// index resolves a coordinate to the first Cell added at that coordinate.
type Grid struct {
	mu    sync.RWMutex
	cells []*Cell
	index map[Point]NodeID
	edges int
}

// Offsets4 lists the four orthogonal unit moves: N, E, S, W.
var Offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
