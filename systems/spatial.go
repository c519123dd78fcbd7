// Package systems provides the broadphase index used by the simulation step.
package systems

import (
	"slices"

	"github.com/pthm-cable/fruitpit/fixed"
)

type cellEntry struct {
	index int
	pos   fixed.Vec2
}

// SpatialGrid buckets fruit indices by position so pair checks only visit
// nearby fruits. Queries return indices in ascending order so callers resolve
// pairs in the same order a full scan would.
type SpatialGrid struct {
	cellSize fixed.Num
	cols     int
	rows     int
	cells    [][]cellEntry
}

// NewSpatialGrid creates a grid covering a width × height area.
func NewSpatialGrid(width, height, cellSize int32) *SpatialGrid {
	if cellSize < 1 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]cellEntry, cols*rows)
	for i := range cells {
		cells[i] = make([]cellEntry, 0, 8)
	}

	return &SpatialGrid{
		cellSize: fixed.FromInt(int(cellSize)),
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entries from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds fruit index i at position p.
func (g *SpatialGrid) Insert(i int, p fixed.Vec2) {
	col, row := g.cell(p)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], cellEntry{index: i, pos: p})
}

// QueryRadiusInto appends to dst the indices within radius of p, excluding
// exclude, sorted ascending. Reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []int, p fixed.Vec2, radius fixed.Num, exclude int) []int {
	start := len(dst)
	cellRadius := radius.Div(g.cellSize).Int() + 1
	centerCol, centerRow := g.cell(p)

	for row := max(centerRow-cellRadius, 0); row <= min(centerRow+cellRadius, g.rows-1); row++ {
		for col := max(centerCol-cellRadius, 0); col <= min(centerCol+cellRadius, g.cols-1); col++ {
			for _, e := range g.cells[row*g.cols+col] {
				if e.index == exclude {
					continue
				}
				if e.pos.Sub(p).Magnitude() <= radius {
					dst = append(dst, e.index)
				}
			}
		}
	}

	slices.Sort(dst[start:])
	return dst
}

// Len returns the number of entries in the grid.
func (g *SpatialGrid) Len() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}

// cell returns the column and row for a position, clamped to the grid.
func (g *SpatialGrid) cell(p fixed.Vec2) (col, row int) {
	col = p.X.Div(g.cellSize).Int()
	row = p.Y.Div(g.cellSize).Int()

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
