package export

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/halftheopposite/dungeon/internal/generate"
)

func testDungeon(t *testing.T) *generate.Dungeon {
	t.Helper()
	d, err := generate.Generate(generate.Config{
		MapWidth:             32,
		MapHeight:            24,
		MapGutterWidth:       1,
		Iterations:           3,
		ContainerGutterWidth: 1,
		ContainerWidthRatio:  0.45,
		ContainerHeightRatio: 0.45,
		RoomGutterWidth:      1,
		RoomMaxMonsters:      3,
		RoomMinSize:          3,
		RoomHoleChance:       1,
		CorridorWidth:        2,
		CorridorTrapChance:   1,
		Rand:                 rand.New(rand.NewSource(11)),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func TestSnapshotShape(t *testing.T) {
	d := testDungeon(t)
	dto := Snapshot(d)

	if dto.Width != d.Width || dto.Height != d.Height {
		t.Errorf("dims %dx%d, want %dx%d", dto.Width, dto.Height, d.Width, d.Height)
	}
	if len(dto.Tiles) != d.Height || len(dto.Tiles[0]) != d.Width {
		t.Errorf("tiles are %d rows of %d, want %d rows of %d",
			len(dto.Tiles), len(dto.Tiles[0]), d.Height, d.Width)
	}
	if len(dto.Corridors) != (1<<3)-1 {
		t.Errorf("%d corridors, want %d (one per internal node)", len(dto.Corridors), (1<<3)-1)
	}
	if len(dto.Monsters) != len(d.Monsters) {
		t.Errorf("%d monster DTOs, want %d", len(dto.Monsters), len(d.Monsters))
	}
	for _, c := range dto.Corridors {
		if c.Orientation != "horizontal" && c.Orientation != "vertical" {
			t.Errorf("bad orientation %q", c.Orientation)
		}
		if c.Traps == "" {
			t.Errorf("corridor missing trap name despite trap chance 1")
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	d := testDungeon(t)
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var back DungeonDTO
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Width != d.Width || back.Height != d.Height {
		t.Errorf("round-trip dims %dx%d, want %dx%d", back.Width, back.Height, d.Width, d.Height)
	}
	if len(back.Tiles) != d.Height {
		t.Errorf("round-trip tiles have %d rows, want %d", len(back.Tiles), d.Height)
	}
}
