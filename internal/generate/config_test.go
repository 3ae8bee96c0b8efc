package generate

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		return Config{
			MapWidth:             64,
			MapHeight:            48,
			MapGutterWidth:       1,
			Iterations:           4,
			ContainerGutterWidth: 1,
			ContainerWidthRatio:  0.45,
			ContainerHeightRatio: 0.45,
			RoomGutterWidth:      1,
			RoomMaxMonsters:      4,
			RoomMinSize:          4,
			RoomHoleChance:       0.3,
			CorridorWidth:        2,
			CorridorTrapChance:   0.3,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative width", func(c *Config) { c.MapWidth = -5 }},
		{"zero height", func(c *Config) { c.MapHeight = 0 }},
		{"negative map gutter", func(c *Config) { c.MapGutterWidth = -1 }},
		{"gutter eats map", func(c *Config) { c.MapWidth = 2; c.MapGutterWidth = 1 }},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }},
		{"negative container gutter", func(c *Config) { c.ContainerGutterWidth = -1 }},
		{"negative ratio", func(c *Config) { c.ContainerWidthRatio = -0.1 }},
		{"negative room gutter", func(c *Config) { c.RoomGutterWidth = -1 }},
		{"negative monster cap", func(c *Config) { c.RoomMaxMonsters = -1 }},
		{"negative room minimum", func(c *Config) { c.RoomMinSize = -1 }},
		{"hole chance above one", func(c *Config) { c.RoomHoleChance = 1.5 }},
		{"zero corridor width", func(c *Config) { c.CorridorWidth = 0 }},
		{"negative trap chance", func(c *Config) { c.CorridorTrapChance = -0.5 }},
	}
	for _, tc := range cases {
		cfg := base()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: accepted", tc.name)
			continue
		}
		var genErr *GenerationError
		if !errors.As(err, &genErr) || genErr.Stage != "config" {
			t.Errorf("%s: wrong error %v", tc.name, err)
		}
	}
}

// TestConfigValidateCatchesScatterHostileParams covers the parameter shapes
// that would otherwise reach the room placer's random draws with a
// non-positive bound.
func TestConfigValidateCatchesScatterHostileParams(t *testing.T) {
	cfg := Config{
		MapWidth:      -5,
		MapHeight:     48,
		Iterations:    0,
		CorridorWidth: 2,
	}
	if cfg.Validate() == nil {
		t.Fatal("negative width with zero iterations accepted")
	}
}
