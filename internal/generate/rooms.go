package generate

import (
	"github.com/halftheopposite/dungeon/internal/geometry"
	"github.com/halftheopposite/dungeon/internal/pattern"
)

// Room is a rectangle carved strictly inside its leaf container, with an
// optional hole decoration stamped over its center.
type Room struct {
	geometry.Rect
	Hole *pattern.Pattern
}

// PlaceRooms derives a room for every leaf container. A leaf whose inset
// rectangle falls below RoomMinSize on either axis keeps no room; that is
// a degenerate result, not an error.
func PlaceRooms(root *Container, cfg *Config) {
	for _, leaf := range root.Leaves() {
		placeRoom(leaf, cfg)
	}
}

func placeRoom(c *Container, cfg *Config) {
	gutter := cfg.ContainerGutterWidth

	// Inset the origin by the gutter plus a jitter of up to a quarter of the
	// container on each axis, then shrink from the far edge the same way.
	x := c.X + gutter + cfg.Rand.Intn(c.Width/4+1)
	y := c.Y + gutter + cfg.Rand.Intn(c.Height/4+1)
	w := c.Width - (x - c.X) - gutter - cfg.Rand.Intn(c.Width/4+1)
	h := c.Height - (y - c.Y) - gutter - cfg.Rand.Intn(c.Height/4+1)

	if w < cfg.RoomMinSize || h < cfg.RoomMinSize {
		return
	}

	room := &Room{Rect: geometry.Rect{X: x, Y: y, Width: w, Height: h}}
	if cfg.Rand.Float64() < cfg.RoomHoleChance {
		// Library order scan: the first stamp fitting half the room wins,
		// so a room carries at most one hole.
		if p, ok := cfg.Holes.FirstFitting(w/2, h/2); ok {
			room.Hole = &p
		}
	}
	c.Room = room
}
