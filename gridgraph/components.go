// SPDX-License-Identifier: MIT
package gridgraph

// ConnectedComponents groups Cells by link connectivity.
// Returns one slice of NodeIDs per component, in BFS discovery order;
// components are ordered by their lowest NodeID. Isolated Cells form
// single-element components.
//
// Time:   O(V+E).
// Memory: O(V) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, len(g.cells))
	var comps [][]NodeID

	for i0 := range g.cells {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []NodeID{NodeID(i0)}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.cells[u].neighbors {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentLabels returns, for every NodeID, the index of its component in
// the order ConnectedComponents would report it.
// Time: O(V+E).
func (g *Grid) ComponentLabels() []int {
	comps := g.ConnectedComponents()
	total := 0
	for _, comp := range comps {
		total += len(comp)
	}
	// every NodeID 0..total-1 lands in exactly one component
	labels := make([]int, total)
	for ci, comp := range comps {
		for _, id := range comp {
			labels[id] = ci
		}
	}
	return labels
}

// SameComponent reports whether the Cells at the coordinates of a and b are
// joined by some chain of links. Missing coordinates report false.
// Time: O(V+E) worst case; stops as soon as b is reached.
func (g *Grid) SameComponent(a, b *Cell) bool {
	if a == nil || b == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ca, cb, ok := g.resolvePair(a, b)
	if !ok {
		return false
	}
	if ca == cb {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[ca.id] = true
	queue := []NodeID{ca.id}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.cells[queue[qi]].neighbors {
			if v == cb.id {
				return true
			}
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}
