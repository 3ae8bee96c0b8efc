package generate

import "testing"

func TestPlaceMonstersBounds(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		tree, cfg := buildTestTree(t, seed)
		PlaceRooms(tree, cfg)
		monsters := PlaceMonsters(tree, cfg)

		leaves := tree.Leaves()
		perRoom := make(map[int]int)
		for _, m := range monsters {
			owner := -1
			for i, leaf := range leaves {
				room := leaf.Room
				if room == nil {
					continue
				}
				g := cfg.RoomGutterWidth
				if m.X >= float64(room.X+g) && m.X < float64(room.Right()-g) &&
					m.Y >= float64(room.Y+g) && m.Y < float64(room.Bottom()-g) {
					owner = i
					break
				}
			}
			if owner == -1 {
				t.Errorf("seed=%d: monster at (%.2f,%.2f) outside every gutter-inset room", seed, m.X, m.Y)
				continue
			}
			perRoom[owner]++
		}
		for i, n := range perRoom {
			if n > cfg.RoomMaxMonsters {
				t.Errorf("seed=%d: room %d has %d monsters, cap is %d", seed, i, n, cfg.RoomMaxMonsters)
			}
		}
	}
}

func TestPlaceMonstersKindsClosed(t *testing.T) {
	tree, cfg := buildTestTree(t, 8)
	PlaceRooms(tree, cfg)
	for _, m := range PlaceMonsters(tree, cfg) {
		if m.Kind.String() == "unknown" {
			t.Errorf("monster with out-of-enumeration kind %d", m.Kind)
		}
		if m.Radius != monsterCollisionRadius {
			t.Errorf("monster radius %v, want %v", m.Radius, monsterCollisionRadius)
		}
	}
}

func TestPlaceMonstersZeroCap(t *testing.T) {
	tree, cfg := buildTestTree(t, 2)
	cfg.RoomMaxMonsters = 0
	PlaceRooms(tree, cfg)
	if got := PlaceMonsters(tree, cfg); len(got) != 0 {
		t.Errorf("%d monsters placed with a zero cap", len(got))
	}
}

func TestPlaceMonstersSkipsRoomlessLeaves(t *testing.T) {
	tree, cfg := buildTestTree(t, 2)
	// No PlaceRooms call: every leaf is roomless.
	if got := PlaceMonsters(tree, cfg); len(got) != 0 {
		t.Errorf("%d monsters placed without any rooms", len(got))
	}
}

// TestMonsterWeights draws many kinds from a seeded source and checks the
// ordering of the weights shows through: bandits are the most common kind
// and mushrooms the rarest.
func TestMonsterWeights(t *testing.T) {
	cfg := testConfig(123)
	counts := make(map[MonsterKind]int)
	for i := 0; i < 4000; i++ {
		counts[pickMonsterKind(cfg)]++
	}
	if counts[Bandit] <= counts[Skeleton] || counts[Skeleton] <= counts[Troll] || counts[Troll] <= counts[Mushroom] {
		t.Errorf("weight ordering not reflected in draws: %v", counts)
	}
	if counts[Mushroom] == 0 {
		t.Error("rarest kind never drawn in 4000 attempts")
	}
}
