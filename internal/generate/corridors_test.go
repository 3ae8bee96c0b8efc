package generate

import (
	"math"
	"testing"
)

func TestPlaceCorridorsShape(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		tree, cfg := buildTestTree(t, seed)
		PlaceRooms(tree, cfg)
		PlaceCorridors(tree, cfg)

		tree.Walk(func(c *Container) {
			if c.IsLeaf() {
				if c.Corridor != nil {
					t.Errorf("seed=%d: leaf %+v has a corridor", seed, c.Rect)
				}
				return
			}
			cor := c.Corridor
			if cor == nil {
				t.Errorf("seed=%d: internal node %+v has no corridor", seed, c.Rect)
				return
			}

			left := c.Left.RepLeaf().Center()
			right := c.Right.RepLeaf().Center()
			if left.X == right.X {
				if cor.Orientation != Vertical {
					t.Errorf("seed=%d: aligned centers but %s corridor", seed, cor.Orientation)
				}
				if cor.Width != cfg.CorridorWidth {
					t.Errorf("seed=%d: vertical corridor width %d, want %d", seed, cor.Width, cfg.CorridorWidth)
				}
				if cor.X != ceil(left.X) || cor.Y != ceil(math.Min(left.Y, right.Y)) {
					t.Errorf("seed=%d: vertical corridor origin (%d,%d) off centers %v/%v", seed, cor.X, cor.Y, left, right)
				}
				if cor.Height != ceil(math.Abs(left.Y-right.Y)) {
					t.Errorf("seed=%d: vertical corridor length %d, want %d", seed, cor.Height, ceil(math.Abs(left.Y-right.Y)))
				}
			} else {
				if cor.Orientation != Horizontal {
					t.Errorf("seed=%d: offset centers but %s corridor", seed, cor.Orientation)
				}
				if cor.Height != cfg.CorridorWidth {
					t.Errorf("seed=%d: horizontal corridor height %d, want %d", seed, cor.Height, cfg.CorridorWidth)
				}
				if cor.X != ceil(math.Min(left.X, right.X)) || cor.Y != ceil(left.Y) {
					t.Errorf("seed=%d: horizontal corridor origin (%d,%d) off centers %v/%v", seed, cor.X, cor.Y, left, right)
				}
				if cor.Width != ceil(math.Abs(left.X-right.X)) {
					t.Errorf("seed=%d: horizontal corridor length %d, want %d", seed, cor.Width, ceil(math.Abs(left.X-right.X)))
				}
			}
		})
	}
}

func TestPlaceCorridorsTrapChanceOne(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		tree, cfg := buildTestTree(t, seed)
		cfg.CorridorTrapChance = 1
		PlaceRooms(tree, cfg)
		PlaceCorridors(tree, cfg)

		tree.Walk(func(c *Container) {
			if c.IsLeaf() {
				return
			}
			cor := c.Corridor
			if cor.Traps == nil {
				t.Errorf("seed=%d: corridor without trap despite chance 1", seed)
				return
			}
			want := cfg.Traps.Horizontal.Name
			if cor.Orientation == Vertical {
				want = cfg.Traps.Vertical.Name
			}
			if cor.Traps.Name != want {
				t.Errorf("seed=%d: %s corridor got trap %q, want %q", seed, cor.Orientation, cor.Traps.Name, want)
			}
		})
	}
}

func TestPlaceCorridorsTrapChanceZero(t *testing.T) {
	tree, cfg := buildTestTree(t, 4)
	cfg.CorridorTrapChance = 0
	PlaceRooms(tree, cfg)
	PlaceCorridors(tree, cfg)

	tree.Walk(func(c *Container) {
		if c.Corridor != nil && c.Corridor.Traps != nil {
			t.Error("trap attached with zero trap chance")
		}
	})
}
