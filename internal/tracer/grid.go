// Package tracer merges occupied cells of a rectangular grid into
// polygon outlines, assembled into the linked geo structure.
package tracer

import "errors"

// Grid is a binary occupancy grid. The origin is the south-west corner:
// cell (x, y) covers the unit square [x, x+1] x [y, y+1] with y up.
type Grid struct {
	Width  int
	Height int
	cells  []bool
}

// ParseRows builds a grid from config rows, top row first. '#' marks an
// occupied cell, any other rune an empty one. Short rows are padded
// with empty cells.
func ParseRows(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, errors.New("tracer: no grid rows")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return Grid{}, errors.New("tracer: all grid rows are empty")
	}

	g := Grid{
		Width:  width,
		Height: len(rows),
		cells:  make([]bool, width*len(rows)),
	}
	for r, row := range rows {
		y := g.Height - 1 - r // rows are listed top-down
		for x, ch := range row {
			if ch == '#' {
				g.cells[y*width+x] = true
			}
		}
	}
	return g, nil
}

// Occupied reports whether cell (x, y) is occupied. Cells outside the
// grid are empty.
func (g Grid) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	return g.cells[y*g.Width+x]
}

// Extent returns the larger of the grid dimensions, used as the
// projection extent.
func (g Grid) Extent() float64 {
	if g.Width > g.Height {
		return float64(g.Width)
	}
	return float64(g.Height)
}
