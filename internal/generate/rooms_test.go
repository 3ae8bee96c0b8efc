package generate

import "testing"

func TestPlaceRoomsContainment(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		tree, cfg := buildTestTree(t, seed)
		PlaceRooms(tree, cfg)

		for i, leaf := range tree.Leaves() {
			room := leaf.Room
			if room == nil {
				continue // degenerate leaf, allowed
			}
			if !leaf.Rect.ContainsRect(room.Rect) {
				t.Errorf("seed=%d: leaf %d room %+v escapes container %+v", seed, i, room.Rect, leaf.Rect)
			}
			// The gutter must hold on every side.
			g := cfg.ContainerGutterWidth
			if room.X < leaf.X+g || room.Y < leaf.Y+g ||
				room.Right() > leaf.Rect.Right()-g || room.Bottom() > leaf.Rect.Bottom()-g {
				t.Errorf("seed=%d: leaf %d room %+v violates gutter %d in %+v", seed, i, room.Rect, g, leaf.Rect)
			}
			if room.Width < cfg.RoomMinSize || room.Height < cfg.RoomMinSize {
				t.Errorf("seed=%d: leaf %d room %dx%d below minimum %d", seed, i, room.Width, room.Height, cfg.RoomMinSize)
			}
		}
	}
}

func TestPlaceRoomsHoleChanceZero(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		tree, cfg := buildTestTree(t, seed)
		cfg.RoomHoleChance = 0
		PlaceRooms(tree, cfg)

		for _, leaf := range tree.Leaves() {
			if leaf.Room != nil && leaf.Room.Hole != nil {
				t.Errorf("seed=%d: hole attached with zero hole chance", seed)
			}
		}
	}
}

func TestPlaceRoomsHoleFitsHalfRoom(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		tree, cfg := buildTestTree(t, seed)
		cfg.RoomHoleChance = 1
		PlaceRooms(tree, cfg)

		for _, leaf := range tree.Leaves() {
			room := leaf.Room
			if room == nil || room.Hole == nil {
				continue
			}
			if room.Hole.Width > room.Width/2 || room.Hole.Height > room.Height/2 {
				t.Errorf("seed=%d: hole %q (%dx%d) too big for room %dx%d",
					seed, room.Hole.Name, room.Hole.Width, room.Hole.Height, room.Width, room.Height)
			}
		}
	}
}

// TestPlaceRoomsSkipsTinyLeaves forces a minimum size no leaf can satisfy
// and expects every leaf to end up roomless, silently.
func TestPlaceRoomsSkipsTinyLeaves(t *testing.T) {
	tree, cfg := buildTestTree(t, 1)
	cfg.RoomMinSize = 1000
	PlaceRooms(tree, cfg)

	for _, leaf := range tree.Leaves() {
		if leaf.Room != nil {
			t.Errorf("leaf %+v got a room despite impossible minimum size", leaf.Rect)
		}
	}
}
