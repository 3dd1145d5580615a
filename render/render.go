// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrEmptyGrid indicates a Grid without Cells.
	ErrEmptyGrid = errors.New("render: grid has no cells")
	// ErrCellPixels indicates CellPixels below minCellPixels.
	ErrCellPixels = errors.New("render: cell size too small")
)

const minCellPixels = 3

// Options controls the drawing.
type Options struct {
	CellPixels int
	Background color.Color
	Wall       color.Color
	RouteColor color.Color
	StartColor color.Color
	EndColor   color.Color
}

// DefaultOptions returns 8-pixel cells, black walls on white, a light blue
// route, a green start and a blue end marker.
func DefaultOptions() Options {
	return Options{
		CellPixels: 8,
		Background: color.White,
		Wall:       color.Black,
		RouteColor: color.RGBA{170, 200, 255, 255},
		StartColor: color.RGBA{40, 180, 70, 255},
		EndColor:   color.RGBA{100, 120, 255, 255},
	}
}

// Draw renders g with route highlighted. route may be empty.
func Draw(g *gridgraph.Grid, route []*gridgraph.Cell, opts Options) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts.CellPixels < minCellPixels {
		return nil, fmt.Errorf("%w: %d < %d", ErrCellPixels, opts.CellPixels, minCellPixels)
	}
	base, err := newGridImage(g, route, opts)
	if err != nil {
		return nil, err
	}

	composed := image_utils.NewCompositeImage()
	if e := composed.AddImage(base, image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("render: setting base grid image: %w", e)
	}
	if len(route) > 0 {
		start, end := route[0], route[len(route)-1]
		if e := composed.AddImage(marker(opts.CellPixels, opts.StartColor), base.markerAt(start)); e != nil {
			return nil, fmt.Errorf("render: adding start marker: %w", e)
		}
		if e := composed.AddImage(marker(opts.CellPixels, opts.EndColor), base.markerAt(end)); e != nil {
			return nil, fmt.Errorf("render: adding end marker: %w", e)
		}
	}
	return image_utils.ToRGBA(composed), nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}

// SavePNG draws g and route and writes the PNG to path.
func SavePNG(path string, g *gridgraph.Grid, route []*gridgraph.Cell, opts Options) error {
	img, err := Draw(g, route, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// marker is a solid square half a cell wide.
func marker(cellPixels int, c color.Color) image.Image {
	side := cellPixels / 2
	if side < 1 {
		side = 1
	}
	m := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(m, m.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return m
}
