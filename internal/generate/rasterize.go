package generate

import (
	"math"

	"github.com/halftheopposite/dungeon/internal/geometry"
	"github.com/halftheopposite/dungeon/internal/pattern"
	"github.com/halftheopposite/dungeon/internal/tilemap"
)

// Rasterize carves the tree into a tile grid and a prop grid. Passes run in
// a fixed order: rooms, corridors, hole stamps, trap stamps, cleanup, wall
// masks, corner normalization.
func Rasterize(root *Container, cfg *Config) (tiles, props *tilemap.Grid) {
	tiles = tilemap.New(cfg.MapWidth, cfg.MapHeight, tilemap.TileSolid)
	props = tilemap.New(cfg.MapWidth, cfg.MapHeight, tilemap.PropNone)

	carveRooms(root, tiles)
	carveCorridors(root, tiles, props)
	carveHoles(root, tiles)
	carveTraps(root, props)
	cleanTiles(tiles)
	cleanProps(root, props)
	applyMasks(tiles)
	return tiles, props
}

func carveRooms(root *Container, tiles *tilemap.Grid) {
	for _, leaf := range root.Leaves() {
		if leaf.Room != nil {
			tiles.Fill(leaf.Room.Rect, tilemap.TileFloor)
		}
	}
}

// carveCorridors opens the corridor rectangles in the tile grid and clears
// the prop layer beneath them, so trap stamps and room overlap checks later
// operate on a uniform surface.
func carveCorridors(root *Container, tiles, props *tilemap.Grid) {
	root.Walk(func(c *Container) {
		if c.Corridor != nil {
			tiles.Fill(c.Corridor.Rect, tilemap.TileFloor)
			props.Fill(c.Corridor.Rect, tilemap.PropNone)
		}
	})
}

// carveHoles stamps each room's hole pattern over the room center with the
// pattern's literal tile values. A stamp may reintroduce solid cells inside
// a carved room; that is the point of it.
func carveHoles(root *Container, tiles *tilemap.Grid) {
	for _, leaf := range root.Leaves() {
		if leaf.Room == nil || leaf.Room.Hole == nil {
			continue
		}
		stamp(leaf.Room.Hole, leaf.Room.Center(), func(x, y, v int) {
			if tiles.InBounds(x, y) {
				tiles.Set(x, y, v)
			}
		})
	}
}

// carveTraps stamps the spikes prop wherever a corridor's trap pattern has a
// non-zero cell. The pattern supplies only the shape.
func carveTraps(root *Container, props *tilemap.Grid) {
	root.Walk(func(c *Container) {
		if c.Corridor == nil || c.Corridor.Traps == nil {
			return
		}
		stamp(c.Corridor.Traps, c.Corridor.Center(), func(x, y, v int) {
			if v != 0 && props.InBounds(x, y) {
				props.Set(x, y, tilemap.PropSpikes)
			}
		})
	})
}

// stamp visits a pattern's footprint centered (rounded up) on c.
func stamp(p *pattern.Pattern, c geometry.Point, set func(x, y, v int)) {
	x0 := int(math.Ceil(c.X)) - p.Width/2
	y0 := int(math.Ceil(c.Y)) - p.Height/2
	for dy := 0; dy < p.Height; dy++ {
		for dx := 0; dx < p.Width; dx++ {
			set(x0+dx, y0+dy, p.Tiles[dy][dx])
		}
	}
}

// cleanTiles removes one-cell-wide solid slivers: a solid cell flanked by
// floor on the west and east, or on the north and south, becomes floor.
func cleanTiles(tiles *tilemap.Grid) {
	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			if tiles.At(x, y) == tilemap.TileFloor {
				continue
			}
			horizontal := tiles.InBounds(x-1, y) && tiles.InBounds(x+1, y) &&
				tiles.At(x-1, y) == tilemap.TileFloor && tiles.At(x+1, y) == tilemap.TileFloor
			vertical := tiles.InBounds(x, y-1) && tiles.InBounds(x, y+1) &&
				tiles.At(x, y-1) == tilemap.TileFloor && tiles.At(x, y+1) == tilemap.TileFloor
			if horizontal || vertical {
				tiles.Set(x, y, tilemap.TileFloor)
			}
		}
	}
}

// cleanProps erases trap markers that ended up inside a room's rectangle:
// traps belong to corridors only.
func cleanProps(root *Container, props *tilemap.Grid) {
	for _, leaf := range root.Leaves() {
		if leaf.Room == nil {
			continue
		}
		r := leaf.Room.Rect
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if props.InBounds(x, y) && props.At(x, y) == tilemap.PropSpikes {
					props.Set(x, y, tilemap.PropNone)
				}
			}
		}
	}
}

// applyMasks replaces every solid tile with its 4-bit neighbor mask, then
// normalizes interior corner cases. Both passes read solidity from a
// snapshot taken before any mask is written, and the grid boundary counts
// as solid.
func applyMasks(tiles *tilemap.Grid) {
	solidGrid := tiles.Clone()
	solid := func(x, y int) bool {
		if !solidGrid.InBounds(x, y) {
			return true
		}
		return solidGrid.At(x, y) != tilemap.TileFloor
	}

	for y := 0; y < tiles.Height; y++ {
		for x := 0; x < tiles.Width; x++ {
			if !solid(x, y) {
				continue
			}
			mask := 0
			if solid(x-1, y) {
				mask |= tilemap.MaskWest
			}
			if solid(x+1, y) {
				mask |= tilemap.MaskEast
			}
			if solid(x, y-1) {
				mask |= tilemap.MaskNorth
			}
			if solid(x, y+1) {
				mask |= tilemap.MaskSouth
			}
			tiles.Set(x, y, mask)
		}
	}

	// Corner normalization, interior tiles only. First match wins; the
	// evaluation order matters when more than one diagonal is open.
	for y := 1; y < tiles.Height-1; y++ {
		for x := 1; x < tiles.Width-1; x++ {
			if !solid(x, y) {
				continue
			}
			west, east := solid(x-1, y), solid(x+1, y)
			north, south := solid(x, y-1), solid(x, y+1)
			switch {
			case east && south && !solid(x+1, y+1):
				tiles.Set(x, y, tilemap.MaskNorthWestSouth)
			case west && south && !solid(x-1, y+1):
				tiles.Set(x, y, tilemap.MaskNorthEastSouth)
			case north && east && !solid(x+1, y-1):
				tiles.Set(x, y, tiles.At(x, y)|tilemap.MaskNorthEast)
			case north && west && !solid(x-1, y-1):
				tiles.Set(x, y, tiles.At(x, y)|tilemap.MaskNorthWest)
			}
		}
	}
}
