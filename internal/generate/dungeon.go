package generate

import (
	"github.com/halftheopposite/dungeon/internal/geometry"
	"github.com/halftheopposite/dungeon/internal/tilemap"
)

// Dungeon is the finished result: the partition tree, the two grids, and
// the monster list. It is owned by the caller and never mutated after
// Generate returns.
type Dungeon struct {
	Width, Height int
	Tree          *Container
	Tiles         *tilemap.Grid
	Props         *tilemap.Grid
	Monsters      []Monster
}

// Generate runs the whole pipeline: tree, rooms, corridors, monsters,
// rasterization. It returns a complete dungeon or a single error, never a
// partial result. For a fixed Rand sequence and parameter set the output is
// bit-identical across calls.
func Generate(cfg Config) (*Dungeon, error) {
	c := cfg.withDefaults()

	area := geometry.Rect{
		X:      c.MapGutterWidth,
		Y:      c.MapGutterWidth,
		Width:  c.MapWidth - 2*c.MapGutterWidth,
		Height: c.MapHeight - 2*c.MapGutterWidth,
	}
	tree, err := BuildTree(area, c.Iterations, c)
	if err != nil {
		return nil, err
	}

	PlaceRooms(tree, c)
	PlaceCorridors(tree, c)
	monsters := PlaceMonsters(tree, c)
	tiles, props := Rasterize(tree, c)

	return &Dungeon{
		Width:    c.MapWidth,
		Height:   c.MapHeight,
		Tree:     tree,
		Tiles:    tiles,
		Props:    props,
		Monsters: monsters,
	}, nil
}
