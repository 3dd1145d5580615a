package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// squareGrid fills an n×n grid row-major with value y*n+x and no links.
func squareGrid(n int) *gridgraph.Grid {
	g := gridgraph.NewGridWithCapacity(n * n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.AddNode(x, y, y*n+x)
		}
	}
	return g
}

// neighborPoints renders c's links as coordinates for order-sensitive checks.
func neighborPoints(g *gridgraph.Grid, c *gridgraph.Cell) []gridgraph.Point {
	var out []gridgraph.Point
	for _, n := range g.Neighbors(c) {
		out = append(out, n.Point())
	}
	return out
}

// requireSymmetric asserts b ∈ a.neighbors ⇔ a ∈ b.neighbors for all pairs,
// and that no Cell is linked to itself or twice to the same Cell.
func requireSymmetric(t *testing.T, g *gridgraph.Grid) {
	t.Helper()
	for _, a := range g.Nodes() {
		seen := make(map[gridgraph.NodeID]bool)
		for _, b := range g.Neighbors(a) {
			require.NotEqual(t, a.ID(), b.ID(), "self-loop on (%d,%d)", a.X, a.Y)
			require.False(t, seen[b.ID()], "duplicate link (%d,%d)-(%d,%d)", a.X, a.Y, b.X, b.Y)
			seen[b.ID()] = true
			require.Contains(t, g.NeighborIDs(b), a.ID(), "asymmetric link (%d,%d)-(%d,%d)", a.X, a.Y, b.X, b.Y)
			require.True(t, gridgraph.Adjacent(a, b), "non-adjacent link (%d,%d)-(%d,%d)", a.X, a.Y, b.X, b.Y)
		}
	}
}

type GridSuite struct {
	suite.Suite
	g *gridgraph.Grid
}

func (s *GridSuite) SetupTest() {
	s.g = squareGrid(3)
}

func (s *GridSuite) cell(x, y int) *gridgraph.Cell {
	c, ok := s.g.NodeAt(x, y)
	s.Require().True(ok, "cell (%d,%d) missing", x, y)
	return c
}

func (s *GridSuite) TestAddNodeAndLookup() {
	require := require.New(s.T())
	require.Equal(9, s.g.Len())
	require.Zero(s.g.EdgeCount())

	c := s.cell(2, 1)
	require.Equal(5, c.Value)
	require.Equal(gridgraph.NodeID(5), c.ID())
	require.Empty(s.g.Neighbors(c))

	_, ok := s.g.NodeAt(3, 0)
	require.False(ok, "(3,0) is outside a 3×3 grid")

	byID, ok := s.g.Node(c.ID())
	require.True(ok)
	require.Same(c, byID)
	_, ok = s.g.Node(gridgraph.NoNode)
	require.False(ok)
}

func (s *GridSuite) TestNodesKeepsInsertionOrder() {
	require := require.New(s.T())
	for i, c := range s.g.Nodes() {
		require.Equal(i, c.Value)
		require.Equal(i%3, c.X)
		require.Equal(i/3, c.Y)
	}
}

func (s *GridSuite) TestAddUndirectedEdgeIsSymmetric() {
	require := require.New(s.T())
	a, b := s.cell(0, 0), s.cell(1, 0)

	require.True(s.g.AddUndirectedEdge(a, b))
	require.True(s.g.HasEdge(a, b))
	require.True(s.g.HasEdge(b, a))
	require.Equal([]gridgraph.Point{{X: 1, Y: 0}}, neighborPoints(s.g, a))
	require.Equal([]gridgraph.Point{{X: 0, Y: 0}}, neighborPoints(s.g, b))
	require.Equal(1, s.g.EdgeCount())
	requireSymmetric(s.T(), s.g)
}

func (s *GridSuite) TestAddUndirectedEdgeResolvesByCoordinates() {
	require := require.New(s.T())
	// Detached Cells only carry coordinates; the Grid links its own instances.
	probeA := &gridgraph.Cell{X: 1, Y: 1}
	probeB := &gridgraph.Cell{X: 1, Y: 2}

	require.True(s.g.AddUndirectedEdge(probeA, probeB))
	require.True(s.g.HasEdge(s.cell(1, 1), s.cell(1, 2)))
	require.Equal(0, s.g.Degree(probeA), "detached probe is not owned by the grid")
}

func (s *GridSuite) TestAddUndirectedEdgeRejectsInvalidPairs() {
	cases := []struct {
		name   string
		first  *gridgraph.Cell
		second *gridgraph.Cell
	}{
		{"Diagonal", s.cell(0, 0), s.cell(1, 1)},
		{"TwoApart", s.cell(0, 0), s.cell(2, 0)},
		{"Self", s.cell(1, 1), s.cell(1, 1)},
		{"MissingCoordinate", s.cell(2, 2), &gridgraph.Cell{X: 3, Y: 2}},
		{"NilFirst", nil, s.cell(0, 0)},
		{"NilSecond", s.cell(0, 0), nil},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Require().False(s.g.AddUndirectedEdge(tc.first, tc.second))
			s.Require().Zero(s.g.EdgeCount())
		})
	}
}

func (s *GridSuite) TestAddUndirectedEdgeNoDuplicates() {
	require := require.New(s.T())
	a, b := s.cell(1, 0), s.cell(1, 1)
	require.True(s.g.AddUndirectedEdge(a, b))
	require.False(s.g.AddUndirectedEdge(a, b))
	require.False(s.g.AddUndirectedEdge(b, a))
	require.Equal(1, s.g.Degree(a))
	require.Equal(1, s.g.EdgeCount())
}

func (s *GridSuite) TestAddRemoveIsInverse() {
	require := require.New(s.T())
	a, b, c := s.cell(1, 1), s.cell(2, 1), s.cell(1, 0)
	require.True(s.g.AddUndirectedEdge(a, c))
	before := map[gridgraph.NodeID][]gridgraph.NodeID{
		a.ID(): s.g.NeighborIDs(a),
		b.ID(): s.g.NeighborIDs(b),
	}

	require.True(s.g.AddUndirectedEdge(a, b))
	require.NoError(s.g.RemoveUndirectedEdge(a, b))

	require.Equal(before[a.ID()], s.g.NeighborIDs(a))
	require.Equal(before[b.ID()], s.g.NeighborIDs(b))
	require.Equal(1, s.g.EdgeCount())
	requireSymmetric(s.T(), s.g)
}

func (s *GridSuite) TestRemoveUndirectedEdgeMissingRelation() {
	a, b := s.cell(0, 0), s.cell(0, 1)
	err := s.g.RemoveUndirectedEdge(a, b)
	s.Require().True(errors.Is(err, gridgraph.ErrRelationNotFound), "got %v", err)
}

func (s *GridSuite) TestRemoveUndirectedEdgeMissingEndpoint() {
	require := require.New(s.T())
	a := s.cell(0, 0)
	require.NoError(s.g.RemoveUndirectedEdge(a, &gridgraph.Cell{X: -1, Y: 0}))
	require.NoError(s.g.RemoveUndirectedEdge(nil, a))
}

func (s *GridSuite) TestDuplicateCoordinatesResolveToFirst() {
	require := require.New(s.T())
	first := s.cell(0, 0)
	dup := s.g.AddNode(0, 0, 99)
	require.Equal(10, s.g.Len())

	got := s.cell(0, 0)
	require.Same(first, got)
	require.True(s.g.AddUndirectedEdge(dup, s.cell(1, 0)))
	require.Equal(1, s.g.Degree(first))
	require.Equal(0, s.g.Degree(dup))
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

// TestManhattan checks the distance helper on a few fixed pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b gridgraph.Cell
		want int
	}{
		{gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 0, Y: 0}, 0},
		{gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 4}, 7},
		{gridgraph.Cell{X: 5, Y: 1}, gridgraph.Cell{X: 2, Y: 3}, 5},
		{gridgraph.Cell{X: -1, Y: 0}, gridgraph.Cell{X: 0, Y: 0}, 1},
	}
	for _, tc := range cases {
		if got := gridgraph.Manhattan(&tc.a, &tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a.Point(), tc.b.Point(), got, tc.want)
		}
	}
}

// TestAdjacent checks that only the four orthogonal unit moves count.
func TestAdjacent(t *testing.T) {
	origin := &gridgraph.Cell{X: 2, Y: 2}
	for _, d := range gridgraph.Offsets4 {
		require.True(t, gridgraph.Adjacent(origin, &gridgraph.Cell{X: 2 + d[0], Y: 2 + d[1]}), "offset %v", d)
	}
	for _, p := range []gridgraph.Point{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 1, Y: 3}, {X: 4, Y: 2}, {X: 2, Y: 0}} {
		require.False(t, gridgraph.Adjacent(origin, &gridgraph.Cell{X: p.X, Y: p.Y}), "point %v", p)
	}
}

// TestGrid_ConcurrentReaders exercises parallel reads while a writer links cells.
func TestGrid_ConcurrentReaders(t *testing.T) {
	g := squareGrid(8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for y := 0; y < 8; y++ {
			for x := 0; x < 7; x++ {
				g.AddUndirectedEdge(&gridgraph.Cell{X: x, Y: y}, &gridgraph.Cell{X: x + 1, Y: y})
			}
		}
	}()
	for i := 0; i < 100; i++ {
		for _, c := range g.Nodes() {
			_ = g.Neighbors(c)
		}
	}
	<-done
	require.Equal(t, 8*7, g.EdgeCount())
	requireSymmetric(t, g)
}
