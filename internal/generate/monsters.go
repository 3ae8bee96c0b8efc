package generate

// Monster scatter spacing and sizing are fixed: tuning happens through the
// sampler, not per call.
const (
	monsterMinSpacing      = 1.5
	monsterMaxSpacing      = 4.0
	monsterCollisionRadius = 0.5
)

// MonsterKind is the closed set of monster types.
type MonsterKind uint8

const (
	Bandit MonsterKind = iota
	Skeleton
	Troll
	Mushroom
)

func (k MonsterKind) String() string {
	switch k {
	case Bandit:
		return "bandit"
	case Skeleton:
		return "skeleton"
	case Troll:
		return "troll"
	case Mushroom:
		return "mushroom"
	}
	return "unknown"
}

// Monster is one placed monster in map coordinates.
type Monster struct {
	Kind   MonsterKind
	X, Y   float64
	Radius float64
}

var monsterWeights = []struct {
	kind   MonsterKind
	weight float64
}{
	{Bandit, 0.5},
	{Skeleton, 0.3},
	{Troll, 0.15},
	{Mushroom, 0.05},
}

// PlaceMonsters scatters monsters inside every room, at most
// RoomMaxMonsters per room. The sampler bounds points to the gutter-inset
// room interior; rooms without a room or without points get none.
func PlaceMonsters(root *Container, cfg *Config) []Monster {
	var out []Monster
	for _, leaf := range root.Leaves() {
		if leaf.Room == nil {
			continue
		}
		room := leaf.Room
		gutter := cfg.RoomGutterWidth

		points := cfg.Sampler.Sample(
			float64(room.Width-2*gutter),
			float64(room.Height-2*gutter),
			monsterMinSpacing,
			monsterMaxSpacing,
		)
		cfg.Rand.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
		if len(points) > cfg.RoomMaxMonsters {
			points = points[:cfg.RoomMaxMonsters]
		}

		for _, p := range points {
			out = append(out, Monster{
				Kind:   pickMonsterKind(cfg),
				X:      float64(room.X+gutter) + p.X,
				Y:      float64(room.Y+gutter) + p.Y,
				Radius: monsterCollisionRadius,
			})
		}
	}
	return out
}

func pickMonsterKind(cfg *Config) MonsterKind {
	r := cfg.Rand.Float64()
	for _, e := range monsterWeights {
		if r < e.weight {
			return e.kind
		}
		r -= e.weight
	}
	return monsterWeights[len(monsterWeights)-1].kind
}
