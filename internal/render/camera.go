package render

// Camera translates between map coordinates and screen coordinates. Map X
// is multiplied by 2 so emoji monsters, which occupy two terminal columns,
// line up with the grid.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on map position (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so map position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each map cell is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Pan shifts the camera by (dx, dy) map cells.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// MapToScreen converts map (mx, my) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) MapToScreen(mx, my int) (sx, sy int, visible bool) {
	sx = (mx - c.OffsetX) * 2
	sy = my - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
