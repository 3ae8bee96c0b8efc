// Package generate implements the dungeon pipeline: recursive spatial
// partitioning, room and corridor placement, monster scattering, and
// tile/prop rasterization with wall-mask autotiling.
package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/halftheopposite/dungeon/internal/geometry"
	"github.com/halftheopposite/dungeon/internal/pattern"
	"github.com/halftheopposite/dungeon/internal/poisson"
)

const defaultSplitRetries = 64

// Sampler produces well-separated scatter points inside a bounding box.
// Implementations may return fewer points than any target, including none.
type Sampler interface {
	Sample(width, height, minDist, maxDist float64) []geometry.Point
}

// Config drives one generation run. All numeric fields are caller-validated;
// the pipeline only rejects configurations that make a split structurally
// impossible.
type Config struct {
	MapWidth, MapHeight  int
	MapGutterWidth       int
	Iterations           int
	ContainerGutterWidth int
	ContainerWidthRatio  float64
	ContainerHeightRatio float64
	RoomGutterWidth      int
	RoomMaxMonsters      int
	RoomMinSize          int
	RoomHoleChance       float64
	CorridorWidth        int
	CorridorTrapChance   float64

	// MaxSplitRetries bounds the ratio-retry loop per container; the
	// best-seen split is accepted on exhaustion. Zero means the default.
	MaxSplitRetries int

	// Rand is the only source of randomness. A nil Rand gets a time-seeded
	// one, which forfeits reproducibility.
	Rand *rand.Rand

	// Sampler supplies monster scatter points; defaults to the poisson
	// sampler driven by Rand.
	Sampler Sampler

	// Holes and Traps default to the built-in pattern libraries.
	Holes pattern.Library
	Traps pattern.TrapSet
}

// Validate reports the first parameter the pipeline cannot work with.
// Generate never calls it; callers turning untrusted input into a Config
// (flags, query strings) should, since the pipeline itself assumes its
// numbers are usable.
func (c Config) Validate() error {
	bad := func(reason string, args ...any) error {
		return &GenerationError{Stage: "config", Reason: fmt.Sprintf(reason, args...)}
	}
	switch {
	case c.MapWidth < 1 || c.MapHeight < 1:
		return bad("map size %dx%d must be positive", c.MapWidth, c.MapHeight)
	case c.MapGutterWidth < 0:
		return bad("map gutter %d must not be negative", c.MapGutterWidth)
	case c.MapWidth <= 2*c.MapGutterWidth || c.MapHeight <= 2*c.MapGutterWidth:
		return bad("map gutter %d leaves no usable area in a %dx%d map",
			c.MapGutterWidth, c.MapWidth, c.MapHeight)
	case c.Iterations < 0:
		return bad("iterations %d must not be negative", c.Iterations)
	case c.ContainerGutterWidth < 0:
		return bad("container gutter %d must not be negative", c.ContainerGutterWidth)
	case c.ContainerWidthRatio < 0 || c.ContainerHeightRatio < 0:
		return bad("container ratios %g/%g must not be negative",
			c.ContainerWidthRatio, c.ContainerHeightRatio)
	case c.RoomGutterWidth < 0:
		return bad("room gutter %d must not be negative", c.RoomGutterWidth)
	case c.RoomMaxMonsters < 0:
		return bad("monster cap %d must not be negative", c.RoomMaxMonsters)
	case c.RoomMinSize < 0:
		return bad("minimum room size %d must not be negative", c.RoomMinSize)
	case c.RoomHoleChance < 0 || c.RoomHoleChance > 1:
		return bad("hole chance %g must be within [0,1]", c.RoomHoleChance)
	case c.CorridorWidth < 1:
		return bad("corridor width %d must be positive", c.CorridorWidth)
	case c.CorridorTrapChance < 0 || c.CorridorTrapChance > 1:
		return bad("trap chance %g must be within [0,1]", c.CorridorTrapChance)
	}
	return nil
}

// withDefaults returns a copy with every optional field populated.
func (c Config) withDefaults() *Config {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Sampler == nil {
		c.Sampler = poisson.New(c.Rand, 0)
	}
	if c.Holes == nil {
		c.Holes = pattern.Holes
	}
	if c.Traps.Horizontal.Tiles == nil && c.Traps.Vertical.Tiles == nil {
		c.Traps = pattern.Traps
	}
	if c.MaxSplitRetries <= 0 {
		c.MaxSplitRetries = defaultSplitRetries
	}
	return &c
}
