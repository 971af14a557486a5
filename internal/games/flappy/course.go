package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Course is the immutable static geometry of a session.
type Course struct {
	Obstacles []Obstacle // Ordered by pair, upper before lower
	Ground    core.Rect
	Bounds    core.Rect // World bounds the flyer is clamped to
}

// BuildCourse turns obstacle pairs into barriers and places the ground.
// The world is as wide as the playfield unless a pair reaches past its right
// edge, in which case it extends half a playfield beyond the last pair.
func BuildCourse(cfg config.FlappyConfig, pairs []config.PairConfig) Course {
	groundTop := cfg.Ground.Y

	width := cfg.Playfield.Width
	obstacles := make([]Obstacle, 0, 2*len(pairs))
	lastRight := 0.0

	for i, p := range pairs {
		w := p.Width
		if w <= 0 {
			w = cfg.Course.PipeWidth
		}
		lastRight = math.Max(lastRight, p.X+w)

		if p.GapTop > 0 {
			obstacles = append(obstacles, Obstacle{
				Rect: core.NewRect(p.X, 0, w, math.Min(p.GapTop, groundTop)),
				Role: RoleUpper,
				Pair: i,
			})
		}
		if lowerH := groundTop - p.GapBottom; lowerH > 0 {
			obstacles = append(obstacles, Obstacle{
				Rect: core.NewRect(p.X, p.GapBottom, w, lowerH),
				Role: RoleLower,
				Pair: i,
			})
		}
	}

	if lastRight > width {
		width = lastRight + cfg.Playfield.Width/2
	}

	return Course{
		Obstacles: obstacles,
		Ground:    core.NewRect(0, groundTop, width, cfg.Ground.Height),
		Bounds:    core.NewRect(0, 0, width, cfg.Playfield.Height),
	}
}

// PairCount returns the number of obstacle pairs in the course.
func (c Course) PairCount() int {
	count := 0
	last := -1
	for _, o := range c.Obstacles {
		if o.Pair != last {
			count++
			last = o.Pair
		}
	}
	return count
}
