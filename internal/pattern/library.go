package pattern

// Holes is the built-in room decoration library, largest stamps first so
// big rooms pick up the more interesting shapes. Solid runs are at least
// two cells thick everywhere, or the rasterizer's sliver clean-up would
// erode them.
var Holes = Library{
	{
		Name:   "donut",
		Width:  6,
		Height: 5,
		Tiles: [][]int{
			{1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1},
			{1, 1, 0, 0, 1, 1},
			{1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1},
		},
	},
	{
		Name:   "block",
		Width:  4,
		Height: 3,
		Tiles: [][]int{
			{1, 1, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
		},
	},
	{
		Name:   "pit",
		Width:  2,
		Height: 2,
		Tiles: [][]int{
			{1, 1},
			{1, 1},
		},
	},
}

// Traps holds the corridor trap stamps. Only the shape is used: the
// rasterizer writes the spikes prop id wherever a cell is non-zero.
var Traps = TrapSet{
	Horizontal: Pattern{
		Name:   "spikes-horizontal",
		Width:  4,
		Height: 2,
		Tiles: [][]int{
			{1, 1, 1, 1},
			{1, 1, 1, 1},
		},
	},
	Vertical: Pattern{
		Name:   "spikes-vertical",
		Width:  2,
		Height: 4,
		Tiles: [][]int{
			{1, 1},
			{1, 1},
			{1, 1},
			{1, 1},
		},
	},
}
