package generate

import (
	"math"

	"github.com/halftheopposite/dungeon/internal/geometry"
	"github.com/halftheopposite/dungeon/internal/pattern"
)

// Orientation distinguishes corridor directions; traps come in one stamp
// variant per orientation.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Corridor is the rectangle linking the two child subtrees of an internal
// tree node, with an optional trap decoration.
type Corridor struct {
	geometry.Rect
	Orientation Orientation
	Traps       *pattern.Pattern
}

// PlaceCorridors attaches a corridor to every internal node, linking the
// centers of the left and right subtrees' representative leaves. Leaves are
// the recursion base case.
func PlaceCorridors(node *Container, cfg *Config) {
	if node == nil || node.IsLeaf() {
		return
	}

	left := node.Left.RepLeaf().Center()
	right := node.Right.RepLeaf().Center()

	var cor *Corridor
	if left.X == right.X {
		cor = &Corridor{
			Rect: geometry.Rect{
				X:      ceil(left.X),
				Y:      ceil(math.Min(left.Y, right.Y)),
				Width:  cfg.CorridorWidth,
				Height: ceil(math.Abs(left.Y - right.Y)),
			},
			Orientation: Vertical,
		}
	} else {
		cor = &Corridor{
			Rect: geometry.Rect{
				X:      ceil(math.Min(left.X, right.X)),
				Y:      ceil(left.Y),
				Width:  ceil(math.Abs(left.X - right.X)),
				Height: cfg.CorridorWidth,
			},
			Orientation: Horizontal,
		}
	}

	if cfg.Rand.Float64() < cfg.CorridorTrapChance {
		p := cfg.Traps.Horizontal
		if cor.Orientation == Vertical {
			p = cfg.Traps.Vertical
		}
		cor.Traps = &p
	}
	node.Corridor = cor

	PlaceCorridors(node.Left, cfg)
	PlaceCorridors(node.Right, cfg)
}

func ceil(v float64) int { return int(math.Ceil(v)) }
