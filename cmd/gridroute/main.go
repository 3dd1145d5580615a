// SPDX-License-Identifier: MIT

// Command gridroute builds a randomly linked square grid and prints the route
// between its first and last Cell.
//
// Settings come from the environment (see package config) and may be
// overridden with flags; run with -help for the list.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/builder"
	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/render"
)

// formatRoute renders a route as "[X:0 Y:0] => [X:1 Y:0] => …".
func formatRoute(route []*gridgraph.Cell) string {
	parts := make([]string, 0, len(route))
	for _, c := range route {
		parts = append(parts, fmt.Sprintf("[X:%d Y:%d]", c.X, c.Y))
	}
	return strings.Join(parts, " => ")
}

func dumpGrid(w io.Writer, g *gridgraph.Grid) {
	for _, c := range g.Nodes() {
		fmt.Fprintf(w, "X:%d Y:%d => Value: %d\n", c.X, c.Y, c.Value)
	}
}

func run(args []string, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[APP] [FATAL] loading configuration: %v", err)
		return 1
	}

	fs := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	fs.IntVar(&cfg.GridSize, "size", cfg.GridSize, "The side of the square grid, in cells.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; 0 picks one from the clock.")
	fs.Float64Var(&cfg.EdgeProbability, "p", cfg.EdgeProbability, "Probability that a candidate link is added.")
	fs.StringVar(&cfg.TieBreak, "tie", cfg.TieBreak, "Equal-score policy: first or last.")
	fs.StringVar(&cfg.RouteImage, "image", cfg.RouteImage, "If set, writes a PNG of the grid and route here.")
	fs.BoolVar(&cfg.DumpGrid, "dump", cfg.DumpGrid, "Print every cell before searching.")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if cfg.GridSize < config.MinGridSize || cfg.EdgeProbability < 0 || cfg.EdgeProbability > 1 {
		fmt.Fprintln(stdout, "Invalid or missing argument.")
		fmt.Fprintln(stdout, "Run with -help for more information.")
		return 1
	}
	tie, err := astar.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		log.Printf("[APP] [FATAL] %v", err)
		return 1
	}

	runID := uuid.New()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[APP] [INFO] run %s: building %dx%d grid (seed=%d, p=%.2f)", runID, cfg.GridSize, cfg.GridSize, seed, cfg.EdgeProbability)
	g, err := builder.RandomGridGraph(cfg.GridSize,
		builder.WithSeed(seed),
		builder.WithEdgeProbability(cfg.EdgeProbability))
	if err != nil {
		log.Printf("[APP] [FATAL] building grid: %v", err)
		return 1
	}
	if cfg.DumpGrid {
		dumpGrid(stdout, g)
	}

	last := cfg.GridSize*cfg.GridSize - 1
	source, _ := g.Node(0)
	dest, _ := g.Node(gridgraph.NodeID(last))
	fmt.Fprintf(stdout, "Running AStar on grid with %d cells...\n", g.Len())
	res, err := astar.Search(g, source, dest, astar.WithTieBreak(tie))
	if err != nil {
		log.Printf("[APP] [FATAL] search: %v", err)
		return 1
	}
	log.Printf("[APP] [INFO] run %s: expanded %d cells", runID, res.Expanded)

	fmt.Fprintf(stdout, "AStar path from %d to %d: \n", source.Value, dest.Value)
	if !res.Found {
		fmt.Fprintln(stdout, "Path not found")
	} else {
		fmt.Fprintln(stdout, formatRoute(res.Path))
	}

	if cfg.RouteImage != "" {
		if err := render.SavePNG(cfg.RouteImage, g, res.Path, render.DefaultOptions()); err != nil {
			log.Printf("[APP] [FATAL] %v", err)
			return 1
		}
		log.Printf("[APP] [INFO] image %s written", cfg.RouteImage)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
