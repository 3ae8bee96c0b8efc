package tilemap

// Direction bits of a wall mask. After the mask pass each solid tile holds
// the OR of the cardinal bits whose neighbor is also solid; the diagonal
// bits are only ever set by corner normalization.
const (
	MaskWest  = 1 << 0
	MaskEast  = 1 << 1
	MaskNorth = 1 << 2
	MaskSouth = 1 << 3

	MaskNorthEast = 1 << 4
	MaskNorthWest = 1 << 5
)

// Forced outer-corner values. Normalization overwrites a tile with one of
// these when the matching diagonal neighbor is open floor.
const (
	MaskNorthWestSouth = MaskNorth | MaskWest | MaskSouth
	MaskNorthEastSouth = MaskNorth | MaskEast | MaskSouth
)

// MaskValues lists every value a tile can hold after the mask and
// normalization passes: floor, the sixteen cardinal combinations, and the
// cardinal combinations with a diagonal corner bit added.
func MaskValues() []int {
	var out []int
	for m := 0; m <= 15; m++ {
		out = append(out, m)
	}
	for m := 0; m <= 15; m++ {
		out = append(out, m|MaskNorthEast, m|MaskNorthWest)
	}
	return out
}
