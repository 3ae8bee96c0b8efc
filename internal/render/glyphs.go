package render

import (
	"github.com/halftheopposite/dungeon/internal/generate"
	"github.com/halftheopposite/dungeon/internal/tilemap"
)

// wallGlyphs maps the four cardinal mask bits to a box-drawing rune that
// connects toward the solid neighbors. Index is the mask's low nibble.
var wallGlyphs = [16]rune{
	0:  '■',
	1:  '╴', // west
	2:  '╶', // east
	3:  '─',
	4:  '╵', // north
	5:  '┘',
	6:  '└',
	7:  '┴',
	8:  '╷', // south
	9:  '┐',
	10: '┌',
	11: '┬',
	12: '│',
	13: '┤',
	14: '├',
	15: '┼',
}

// GlyphForTile returns the rune for a post-mask tile value. Diagonal corner
// bits reuse the cardinal glyph: they select sprites in a real tileset, not
// a different connectivity.
func GlyphForTile(v int) rune {
	if v == tilemap.TileFloor {
		return '·'
	}
	return wallGlyphs[v&15]
}

// GlyphForProp returns the rune for a prop id, or 0 for an empty cell.
func GlyphForProp(v int) rune {
	if v == tilemap.PropSpikes {
		return '^'
	}
	return 0
}

// monsterGlyphs are two-column emoji; the camera leaves room for them.
var monsterGlyphs = map[generate.MonsterKind]string{
	generate.Bandit:   "🦹",
	generate.Skeleton: "💀",
	generate.Troll:    "👹",
	generate.Mushroom: "🍄",
}

// GlyphForMonster returns the emoji for a monster kind.
func GlyphForMonster(k generate.MonsterKind) string {
	if g, ok := monsterGlyphs[k]; ok {
		return g
	}
	return "❓"
}
