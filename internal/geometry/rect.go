// Package geometry provides the rectangle and point primitives shared by the
// partition tree, the room and corridor carvers, and the rasterizer.
package geometry

// Point is a position with fractional precision. Rectangle centers and
// monster placements are fractional because odd-sized rectangles center
// between two cells.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle addressed by its top-left origin.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{
		X: float64(r.X) + float64(r.Width)/2,
		Y: float64(r.Y) + float64(r.Height)/2,
	}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Surface returns the rectangle's area in cells.
func (r Rect) Surface() int { return r.Width * r.Height }

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
