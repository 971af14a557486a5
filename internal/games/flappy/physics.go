package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Engine integrates the flyer and resolves its contacts with the course.
// It owns the flyer and the collision flags; the phase is supplied per step.
type Engine struct {
	physics config.FlappyPhysics
	course  Course
	world   *world
	flyer   Flyer
	flags   CollisionFlags
}

// NewEngine places a flyer into a course.
func NewEngine(physics config.FlappyPhysics, course Course, flyer Flyer) *Engine {
	e := &Engine{
		physics: physics,
		course:  course,
		flyer:   flyer,
	}
	e.world = newWorld(&e.course, flyer.Rect())
	return e
}

// Flyer returns a copy of the flyer state.
func (e *Engine) Flyer() Flyer {
	return e.flyer
}

// Flags returns the accumulated collision flags.
func (e *Engine) Flags() CollisionFlags {
	return e.flags
}

// Course returns the static geometry.
func (e *Engine) Course() *Course {
	return &e.course
}

// Place moves the flyer to (x, y) without touching its velocity.
func (e *Engine) Place(x, y float64) {
	e.flyer.X = x
	e.flyer.Y = y
}

// Step advances the flyer by dt seconds under the rules for phase and
// returns the accumulated flags. Vertical rules, first match wins:
//
//  1. Idle: vy is pinned to the ascend rate; gravity is suppressed.
//  2. Active, no flags, control held: vy is set to the ascend rate.
//  3. Active, no flags, control released: gravity accelerates vy.
//  4. Terminal or any flag: gravity and contact response only.
//
// Horizontal velocity is the forward speed while Active with no flags and
// zero otherwise, including on the step that raises the first flag.
// Detection runs every step, even after Terminal.
func (e *Engine) Step(dt float64, controlPressed bool, phase Phase) CollisionFlags {
	dt = sanitizeDt(dt)
	f := &e.flyer
	p := e.physics

	flying := phase == PhaseActive && !e.flags.Any()

	switch {
	case phase == PhaseIdle:
		f.VY = -p.AscendSpeed
	case flying && controlPressed:
		f.VY = -p.AscendSpeed
	default:
		f.VY += p.Gravity * dt
	}

	if flying {
		f.VX = p.ForwardSpeed
	} else {
		f.VX = 0
	}

	// Semi-implicit Euler: velocity first, then position
	f.X += f.VX * dt
	f.Y += f.VY * dt

	e.collide()
	if e.flags.Any() {
		f.VX = 0
	}
	e.clampToBounds(phase)

	return e.flags
}

// collide raises flags for every body the flyer overlaps, then pushes the
// flyer out of each one along the axis of least penetration, reflecting the
// normal velocity component scaled by the bounce coefficient.
func (e *Engine) collide() {
	hits := e.world.contacts(e.flyer.Rect())

	for _, idx := range hits {
		if idx == groundIndex {
			e.flags.Landed = true
		} else {
			e.flags.Bumped = true
		}
	}

	for _, idx := range hits {
		dx, dy := e.flyer.Rect().Penetration(e.world.body(idx))
		if dx == 0 && dy == 0 {
			continue // Already pushed clear by an earlier contact
		}
		e.flyer.X += dx
		e.flyer.Y += dy
		e.flyer.VX = reflect(e.flyer.VX, dx, e.flyer.Bounce)
		e.flyer.VY = reflect(e.flyer.VY, dy, e.flyer.Bounce)
	}
}

// clampToBounds keeps the flyer inside the world. The top and bottom edges
// bounce like any other surface, except that a hovering flyer rests against
// the top with its ascend rate intact. The side edges only stop the flyer,
// since horizontal velocity is re-asserted by the forward rule every step.
func (e *Engine) clampToBounds(phase Phase) {
	f := &e.flyer
	b := e.course.Bounds

	if f.Y < b.Y {
		f.Y = b.Y
		if phase != PhaseIdle {
			f.VY = reflect(f.VY, 1, f.Bounce)
		}
	}
	if f.Y+f.H > b.Bottom() {
		f.Y = b.Bottom() - f.H
		f.VY = reflect(f.VY, -1, f.Bounce)
	}
	f.X = core.ClampF(f.X, b.X, b.Right()-f.W)
}

// reflect bounces velocity v off a surface whose push-out direction has the
// sign of normal. Velocity already moving away from the surface is kept.
func reflect(v, normal, bounce float64) float64 {
	if normal == 0 || v == 0 || (v > 0) == (normal > 0) {
		return v
	}
	return -v * bounce
}

// sanitizeDt treats malformed durations as a zero-length step.
func sanitizeDt(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
