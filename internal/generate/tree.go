package generate

import (
	"fmt"

	"github.com/halftheopposite/dungeon/internal/geometry"
)

// Container is one node of the partition tree. A leaf may own a Room; an
// internal node owns two children that exactly partition its rectangle
// along one axis, plus the Corridor linking their subtrees.
type Container struct {
	geometry.Rect

	Left, Right *Container
	Room        *Room
	Corridor    *Corridor

	rep *Container
}

// IsLeaf reports whether the container has no children.
func (c *Container) IsLeaf() bool { return c.Left == nil && c.Right == nil }

// RepLeaf returns the subtree's representative leaf: the container itself
// when it is a leaf, otherwise the representative of its left child.
// Memoized, so corridor placement resolves each subtree once.
func (c *Container) RepLeaf() *Container {
	if c.rep == nil {
		if c.IsLeaf() {
			c.rep = c
		} else {
			c.rep = c.Left.RepLeaf()
		}
	}
	return c.rep
}

// Leaves returns the tree's leaf containers in left-to-right order.
func (c *Container) Leaves() []*Container {
	if c.IsLeaf() {
		return []*Container{c}
	}
	return append(c.Left.Leaves(), c.Right.Leaves()...)
}

// Walk calls fn on every container in pre-order.
func (c *Container) Walk(fn func(*Container)) {
	fn(c)
	if c.Left != nil {
		c.Left.Walk(fn)
	}
	if c.Right != nil {
		c.Right.Walk(fn)
	}
}

// BuildTree recursively splits area into a full binary tree of the given
// depth. Every path from the root to a leaf has exactly iterations edges.
func BuildTree(area geometry.Rect, iterations int, cfg *Config) (*Container, error) {
	node := &Container{Rect: area}
	if iterations == 0 {
		return node, nil
	}

	left, right, err := splitContainer(area, cfg)
	if err != nil {
		return nil, err
	}
	if node.Left, err = BuildTree(left, iterations-1, cfg); err != nil {
		return nil, err
	}
	if node.Right, err = BuildTree(right, iterations-1, cfg); err != nil {
		return nil, err
	}
	return node, nil
}

// splitContainer cuts area in two along a random axis at a random offset.
// Splits whose children fall below the configured long-to-short ratio are
// resampled up to MaxSplitRetries times; on exhaustion the best-seen
// candidate wins, so hostile ratio parameters degrade layout quality
// instead of hanging the build.
func splitContainer(area geometry.Rect, cfg *Config) (geometry.Rect, geometry.Rect, error) {
	if area.Width < 2 && area.Height < 2 {
		return geometry.Rect{}, geometry.Rect{},
			&GenerationError{
				Stage:  "split",
				Reason: fmt.Sprintf("container %dx%d at (%d,%d) is too small to split", area.Width, area.Height, area.X, area.Y),
			}
	}

	var bestLeft, bestRight geometry.Rect
	bestScore := -1.0

	for i := 0; i < cfg.MaxSplitRetries; i++ {
		vertical := cfg.Rand.Intn(2) == 0
		// A 1-wide (or 1-tall) container only splits along the other axis.
		if vertical && area.Width < 2 {
			vertical = false
		} else if !vertical && area.Height < 2 {
			vertical = true
		}

		var left, right geometry.Rect
		var score float64
		if vertical {
			w := 1 + cfg.Rand.Intn(area.Width-1)
			left = geometry.Rect{X: area.X, Y: area.Y, Width: w, Height: area.Height}
			right = geometry.Rect{X: area.X + w, Y: area.Y, Width: area.Width - w, Height: area.Height}
			score = ratioScore(widthRatio(left), widthRatio(right), cfg.ContainerWidthRatio)
		} else {
			h := 1 + cfg.Rand.Intn(area.Height-1)
			left = geometry.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: h}
			right = geometry.Rect{X: area.X, Y: area.Y + h, Width: area.Width, Height: area.Height - h}
			score = ratioScore(heightRatio(left), heightRatio(right), cfg.ContainerHeightRatio)
		}

		if score >= 1 {
			return left, right, nil
		}
		if score > bestScore {
			bestScore = score
			bestLeft, bestRight = left, right
		}
	}
	return bestLeft, bestRight, nil
}

func widthRatio(r geometry.Rect) float64 {
	return float64(r.Width) / float64(r.Height)
}

func heightRatio(r geometry.Rect) float64 {
	return float64(r.Height) / float64(r.Width)
}

// ratioScore is >= 1 when both children meet the required ratio, and
// proportionally smaller otherwise so candidates stay comparable.
func ratioScore(a, b, required float64) float64 {
	if required <= 0 {
		return 1
	}
	return min(a, b) / required
}
