// Package poisson implements a blue-noise scatter sampler (Bridson's
// poisson-disc algorithm). It is the default point source for monster
// placement: every returned pair of points is at least minDist apart, and
// the sampler may return any number of points, including zero.
package poisson

import (
	"math"
	"math/rand"

	"github.com/halftheopposite/dungeon/internal/geometry"
)

const defaultTries = 30

// Sampler generates well-separated point sets inside a bounding box.
type Sampler struct {
	rng   *rand.Rand
	tries int
}

// New creates a Sampler drawing from rng. tries bounds the candidate
// attempts per active point; pass 0 for the default.
func New(rng *rand.Rand, tries int) *Sampler {
	if tries <= 0 {
		tries = defaultTries
	}
	return &Sampler{rng: rng, tries: tries}
}

// Sample returns points within [0,width)x[0,height), no two closer than
// minDist. New candidates are drawn from the annulus [minDist, maxDist]
// around existing points. A degenerate box yields no points.
func (s *Sampler) Sample(width, height, minDist, maxDist float64) []geometry.Point {
	if width <= 0 || height <= 0 || minDist <= 0 {
		return nil
	}
	if maxDist < minDist {
		maxDist = minDist
	}

	// Background grid with at most one point per cell, for O(1) distance
	// rejection against the nearby points only.
	cellSize := minDist / math.Sqrt2
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))
	grid := make([]int, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}

	var points []geometry.Point
	var active []int

	place := func(p geometry.Point) {
		idx := len(points)
		points = append(points, p)
		active = append(active, idx)
		gx := int(p.X / cellSize)
		gy := int(p.Y / cellSize)
		grid[gy*gridW+gx] = idx
	}

	farEnough := func(p geometry.Point) bool {
		gx := int(p.X / cellSize)
		gy := int(p.Y / cellSize)
		for y := gy - 2; y <= gy+2; y++ {
			if y < 0 || y >= gridH {
				continue
			}
			for x := gx - 2; x <= gx+2; x++ {
				if x < 0 || x >= gridW {
					continue
				}
				idx := grid[y*gridW+x]
				if idx < 0 {
					continue
				}
				dx := points[idx].X - p.X
				dy := points[idx].Y - p.Y
				if dx*dx+dy*dy < minDist*minDist {
					return false
				}
			}
		}
		return true
	}

	place(geometry.Point{X: s.rng.Float64() * width, Y: s.rng.Float64() * height})

	for len(active) > 0 {
		ai := s.rng.Intn(len(active))
		parent := points[active[ai]]

		placed := false
		for t := 0; t < s.tries; t++ {
			angle := s.rng.Float64() * 2 * math.Pi
			dist := minDist + s.rng.Float64()*(maxDist-minDist)
			cand := geometry.Point{
				X: parent.X + math.Cos(angle)*dist,
				Y: parent.Y + math.Sin(angle)*dist,
			}
			if cand.X < 0 || cand.X >= width || cand.Y < 0 || cand.Y >= height {
				continue
			}
			if farEnough(cand) {
				place(cand)
				placed = true
				break
			}
		}
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return points
}
