package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/halftheopposite/dungeon/internal/generate"
)

// GenerateFunc produces a dungeon for a seed. The viewer calls it again on
// every regeneration request.
type GenerateFunc func(seed int64) (*generate.Dungeon, error)

// Viewer is the interactive preview loop shared by the CLI preview flag and
// the SSH server: it draws one dungeon and reacts to pan/regenerate keys.
type Viewer struct {
	screen   tcell.Screen
	gen      GenerateFunc
	seed     int64
	dungeon  *generate.Dungeon
	renderer *Renderer
}

// NewViewer generates the initial dungeon and prepares the screen loop.
func NewViewer(screen tcell.Screen, gen GenerateFunc, seed int64) (*Viewer, error) {
	d, err := gen(seed)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		screen:   screen,
		gen:      gen,
		seed:     seed,
		dungeon:  d,
		renderer: NewRenderer(screen, d),
	}, nil
}

// Run drives the event loop until the user quits or the screen dies.
func (v *Viewer) Run() error {
	for {
		v.renderer.Draw(v.dungeon, v.seed)
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.renderer.Reset(v.dungeon)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'r':
				v.seed++
				d, err := v.gen(v.seed)
				if err != nil {
					return err
				}
				v.dungeon = d
				v.renderer.Reset(d)
			case ev.Key() == tcell.KeyLeft:
				v.renderer.Pan(-2, 0)
			case ev.Key() == tcell.KeyRight:
				v.renderer.Pan(2, 0)
			case ev.Key() == tcell.KeyUp:
				v.renderer.Pan(0, -1)
			case ev.Key() == tcell.KeyDown:
				v.renderer.Pan(0, 1)
			}
		case nil:
			// Screen finalized under us (SSH session closed).
			return nil
		}
	}
}
