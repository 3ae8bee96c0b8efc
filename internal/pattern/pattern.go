// Package pattern provides the read-only stamp libraries used to decorate
// rooms (holes) and corridors (traps). A pattern is a small fixed-size block
// of literal tile values; the generator never mutates one.
package pattern

// Pattern is one stamp: Tiles holds Height rows of Width values.
type Pattern struct {
	Name          string
	Width, Height int
	Tiles         [][]int
}

// Library is an ordered set of patterns. Order matters: lookups return the
// first match, so larger patterns come first.
type Library []Pattern

// FirstFitting returns the first pattern no wider than maxWidth and no
// taller than maxHeight, or false when none fits.
func (l Library) FirstFitting(maxWidth, maxHeight int) (Pattern, bool) {
	for _, p := range l {
		if p.Width <= maxWidth && p.Height <= maxHeight {
			return p, true
		}
	}
	return Pattern{}, false
}

// TrapSet holds the trap stamp for each corridor orientation.
type TrapSet struct {
	Horizontal Pattern
	Vertical   Pattern
}
