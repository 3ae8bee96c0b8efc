// dungeon generates a BSP dungeon and exports it as JSON, or opens an
// interactive terminal preview. Build:
//
//	go build -o dungeon ./cmd/dungeon
//
// Usage:
//
//	./dungeon -seed 42 -out dungeon.json
//	./dungeon -seed 42 -preview
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halftheopposite/dungeon/internal/export"
	"github.com/halftheopposite/dungeon/internal/generate"
	"github.com/halftheopposite/dungeon/internal/render"
)

func main() {
	var (
		seed            = flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
		width           = flag.Int("width", 64, "Map width in tiles")
		height          = flag.Int("height", 48, "Map height in tiles")
		mapGutter       = flag.Int("map-gutter", 1, "Untouched border around the whole map")
		iterations      = flag.Int("iterations", 4, "Partition depth; leaves = 2^iterations")
		containerGutter = flag.Int("container-gutter", 1, "Inset between a container and its room")
		widthRatio      = flag.Float64("width-ratio", 0.45, "Minimum width/height ratio for vertical splits")
		heightRatio     = flag.Float64("height-ratio", 0.45, "Minimum height/width ratio for horizontal splits")
		roomGutter      = flag.Int("room-gutter", 1, "Inset between a room and its monsters")
		maxMonsters     = flag.Int("max-monsters", 4, "Monster cap per room")
		minRoomSize     = flag.Int("min-room", 4, "Rooms below this size on either axis are skipped")
		holeChance      = flag.Float64("hole-chance", 0.3, "Chance of a hole decoration per room (0-1)")
		corridorWidth   = flag.Int("corridor-width", 2, "Corridor thickness in tiles")
		trapChance      = flag.Float64("trap-chance", 0.3, "Chance of a trap per corridor (0-1)")
		out             = flag.String("out", "-", "Output file for the JSON export (- for stdout)")
		preview         = flag.Bool("preview", false, "Open an interactive terminal preview instead of exporting")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := generate.Config{
		MapWidth:             *width,
		MapHeight:            *height,
		MapGutterWidth:       *mapGutter,
		Iterations:           *iterations,
		ContainerGutterWidth: *containerGutter,
		ContainerWidthRatio:  *widthRatio,
		ContainerHeightRatio: *heightRatio,
		RoomGutterWidth:      *roomGutter,
		RoomMaxMonsters:      *maxMonsters,
		RoomMinSize:          *minRoomSize,
		RoomHoleChance:       *holeChance,
		CorridorWidth:        *corridorWidth,
		CorridorTrapChance:   *trapChance,
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	gen := func(seed int64) (*generate.Dungeon, error) {
		c := cfg
		c.Rand = rand.New(rand.NewSource(seed))
		return generate.Generate(c)
	}

	if *preview {
		if err := runPreview(gen, *seed); err != nil {
			fail(err)
		}
		return
	}

	d, err := gen(*seed)
	if err != nil {
		fail(err)
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		w = f
	}
	if err := export.Write(w, d); err != nil {
		fail(err)
	}
}

func runPreview(gen render.GenerateFunc, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	viewer, err := render.NewViewer(screen, gen, seed)
	if err != nil {
		return err
	}
	return viewer.Run()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
