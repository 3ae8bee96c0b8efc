// Package tilemap holds the integer grids the rasterizer carves into, plus
// the tile and prop id constants shared with renderers and exporters.
package tilemap

import "github.com/halftheopposite/dungeon/internal/geometry"

// Tile ids before the mask pass.
const (
	TileFloor = 0
	TileSolid = 1
)

// Prop ids.
const (
	PropNone   = 0
	PropSpikes = 1
)

// Grid is a row-major integer grid (y-major, x-minor).
type Grid struct {
	Width, Height int
	Cells         [][]int
}

// New creates a Grid with every cell set to fill.
func New(width, height, fill int) *Grid {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		if fill != 0 {
			for x := range cells[y] {
				cells[y][x] = fill
			}
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell value at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) int { return g.Cells[y][x] }

// Set replaces the cell value at (x, y).
func (g *Grid) Set(x, y, v int) { g.Cells[y][x] = v }

// Fill sets every in-bounds cell of the rectangle to v.
func (g *Grid) Fill(r geometry.Rect, v int) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if g.InBounds(x, y) {
				g.Cells[y][x] = v
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, Cells: make([][]int, g.Height)}
	for y := range g.Cells {
		row := make([]int, g.Width)
		copy(row, g.Cells[y])
		out.Cells[y] = row
	}
	return out
}

// Equal reports whether both grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
