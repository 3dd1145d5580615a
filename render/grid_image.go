// SPDX-License-Identifier: MIT
package render

import (
	"image"
	"image/color"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// gridImage satisfies image.Image over a snapshot of a Grid. Per-cell flags
// are indexed row-major over the bounding box of the Grid's coordinates.
type gridImage struct {
	opts       Options
	minX, minY int
	w, h       int
	present    []bool
	openEast   []bool
	openSouth  []bool
	onRoute    []bool
}

func newGridImage(g *gridgraph.Grid, route []*gridgraph.Cell, opts Options) (*gridImage, error) {
	cells := g.Nodes()
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	minX, minY, maxX, maxY := cells[0].X, cells[0].Y, cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	m := &gridImage{
		opts: opts,
		minX: minX,
		minY: minY,
		w:    maxX - minX + 1,
		h:    maxY - minY + 1,
	}
	size := m.w * m.h
	m.present = make([]bool, size)
	m.openEast = make([]bool, size)
	m.openSouth = make([]bool, size)
	m.onRoute = make([]bool, size)

	for _, c := range cells {
		i := m.index(c.X, c.Y)
		m.present[i] = true
		for _, n := range g.Neighbors(c) {
			switch {
			case n.X == c.X+1:
				m.openEast[i] = true
			case n.Y == c.Y+1:
				m.openSouth[i] = true
			}
		}
	}
	for _, c := range route {
		if c != nil && m.inBox(c.X, c.Y) {
			m.onRoute[m.index(c.X, c.Y)] = true
		}
	}
	return m, nil
}

func (m *gridImage) index(x, y int) int {
	return (y-m.minY)*m.w + (x - m.minX)
}

func (m *gridImage) inBox(x, y int) bool {
	return x >= m.minX && x < m.minX+m.w && y >= m.minY && y < m.minY+m.h
}

// markerAt is the top-left pixel of a centered half-cell marker on c,
// shifted past the one-pixel north/west border.
func (m *gridImage) markerAt(c *gridgraph.Cell) image.Point {
	px := m.opts.CellPixels
	return image.Pt(1+(c.X-m.minX)*px+px/4, 1+(c.Y-m.minY)*px+px/4)
}

func (m *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *gridImage) Bounds() image.Rectangle {
	px := m.opts.CellPixels
	// one extra pixel row and column close the west and north borders
	return image.Rect(0, 0, m.w*px+1, m.h*px+1)
}

func (m *gridImage) At(x, y int) color.Color {
	px := m.opts.CellPixels
	b := m.Bounds()
	if x < 0 || y < 0 || x >= b.Max.X || y >= b.Max.Y {
		return color.Transparent
	}
	// Pixel row/column 0 is the outer north/west border.
	if x == 0 || y == 0 {
		cx, cy := m.minX+(x-1)/px, m.minY+(y-1)/px
		if x == 0 && y == 0 {
			return m.opts.Wall
		}
		if x == 0 {
			cx = m.minX
		}
		if y == 0 {
			cy = m.minY
		}
		if m.present[m.index(cx, cy)] {
			return m.opts.Wall
		}
		return m.opts.Background
	}
	cx, ox := (x-1)/px, (x-1)%px
	cy, oy := (y-1)/px, (y-1)%px
	i := cy*m.w + cx
	if !m.present[i] {
		return m.opts.Background
	}
	eastEdge, southEdge := ox == px-1, oy == px-1
	switch {
	case eastEdge && southEdge:
		return m.opts.Wall
	case eastEdge && !m.openEast[i]:
		return m.opts.Wall
	case southEdge && !m.openSouth[i]:
		return m.opts.Wall
	case m.onRoute[i]:
		return m.opts.RouteColor
	}
	return m.opts.Background
}
