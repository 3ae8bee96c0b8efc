// Package render draws a generated dungeon onto a tcell screen: masked
// walls as box-drawing runes, props, and emoji monsters, with a pannable
// camera.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/halftheopposite/dungeon/internal/generate"
)

// Renderer draws a dungeon onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer whose camera starts centered on the map.
func NewRenderer(screen tcell.Screen, d *generate.Dungeon) *Renderer {
	r := &Renderer{screen: screen}
	r.Reset(d)
	return r
}

// Reset recenters the camera on the dungeon, sized to the current screen.
// Call after a resize or a regeneration.
func (r *Renderer) Reset(d *generate.Dungeon) {
	w, h := r.screen.Size()
	// Bottom row is the status line.
	r.camera = NewCamera(d.Width/2, d.Height/2, w, h-1)
}

// Pan shifts the camera by (dx, dy) map cells.
func (r *Renderer) Pan(dx, dy int) { r.camera.Pan(dx, dy) }

// Draw renders the full frame: tiles, props, monsters, status line.
func (r *Renderer) Draw(d *generate.Dungeon, seed int64) {
	r.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	propStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			sx, sy, visible := r.camera.MapToScreen(x, y)
			if !visible {
				continue
			}
			if g := GlyphForProp(d.Props.At(x, y)); g != 0 {
				r.putGlyph(sx, sy, string(g), propStyle)
				continue
			}
			v := d.Tiles.At(x, y)
			style := wallStyle
			if v == 0 {
				style = floorStyle
			}
			r.putGlyph(sx, sy, string(GlyphForTile(v)), style)
		}
	}

	for _, m := range d.Monsters {
		mx := int(math.Round(m.X))
		my := int(math.Round(m.Y))
		if sx, sy, visible := r.camera.MapToScreen(mx, my); visible {
			r.putGlyph(sx, sy, GlyphForMonster(m.Kind), tcell.StyleDefault)
		}
	}

	r.drawStatus(d, seed)
}

func (r *Renderer) drawStatus(d *generate.Dungeon, seed int64) {
	w, h := r.screen.Size()
	status := fmt.Sprintf(" seed %d | %dx%d | %d monsters | arrows pan · r regenerate · q quit",
		seed, d.Width, d.Height, len(d.Monsters))
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, h-1, ' ', nil, style)
	}
	col := 0
	for _, ch := range status {
		if col >= w {
			break
		}
		r.screen.SetContent(col, h-1, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// putGlyph writes one glyph at (sx, sy), padding narrow runes to the two
// columns every map cell occupies.
func (r *Renderer) putGlyph(sx, sy int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(sx, sy, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}
}
