// Package gridroute builds square grids of Cells joined by randomly chosen
// orthogonal links and finds routes across them.
//
// The module is organized under a handful of subpackages:
//
//	gridgraph/ – Cell and Grid types, symmetric link add/remove, connectivity
//	builder/   – RandomGridGraph and LatticeGridGraph constructors (seeded, optioned)
//	astar/     – best-first route search with an accumulating Manhattan score
//	render/    – PNG rendering of a Grid and an optional route
//	config/    – environment and .env settings for the gridroute command
//
// The gridroute command (cmd/gridroute) ties them together: it builds an
// n×n grid, searches from the Cell with Value 0 to the Cell with Value n²-1
// and prints the route, or "Path not found".
//
// Quick start:
//
//	g, _ := builder.RandomGridGraph(100, builder.WithSeed(42))
//	src, _ := g.NodeAt(0, 0)
//	dst, _ := g.NodeAt(99, 99)
//	res, _ := astar.Search(g, src, dst)
//	fmt.Println(res.Found, res.Hops())
//
// Installation:
//
//	go get github.com/katalvlaran/gridroute
package gridroute
