package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		fail("playfield must have a positive size, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	}

	p := c.Physics
	if p.Gravity < 0 {
		fail("physics.gravity must not be negative, got %g", p.Gravity)
	}
	if p.AscendSpeed < 0 {
		fail("physics.ascend_speed must not be negative, got %g", p.AscendSpeed)
	}
	if p.ForwardSpeed < 0 {
		fail("physics.forward_speed must not be negative, got %g", p.ForwardSpeed)
	}
	if p.Bounce < 0 || p.Bounce > 1 {
		fail("physics.bounce must be within [0, 1], got %g", p.Bounce)
	}

	f := c.Flyer
	if f.Width <= 0 || f.Height <= 0 {
		fail("flyer must have a positive size, got %gx%g", f.Width, f.Height)
	}
	if f.X < 0 || f.Y < 0 || f.X+f.Width > c.Playfield.Width || f.Y+f.Height > c.Ground.Y {
		fail("flyer spawn (%g, %g) must lie inside the playfield above the ground", f.X, f.Y)
	}

	g := c.Ground
	if g.Height <= 0 {
		fail("ground.height must be positive, got %g", g.Height)
	}
	if g.Y <= 0 || g.Y+g.Height > c.Playfield.Height {
		fail("ground (y=%g, height=%g) must lie inside the playfield", g.Y, g.Height)
	}

	if c.Course.PipeWidth <= 0 {
		fail("course.pipe_width must be positive, got %g", c.Course.PipeWidth)
	}
	for i, pair := range c.Course.Pairs {
		if err := c.ValidatePair(pair); err != nil {
			errs = append(errs, fmt.Errorf("course.pairs[%d]: %w", i, err))
		}
	}

	gen := c.Course.Generator
	if gen.Count < 0 {
		fail("course.generator.count must not be negative, got %d", gen.Count)
	}
	if gen.Count > 0 {
		if gen.Spacing <= 0 {
			fail("course.generator.spacing must be positive, got %g", gen.Spacing)
		}
		if gen.MinGap <= 0 || gen.MaxGap < gen.MinGap {
			fail("course.generator gap range [%g, %g] is invalid", gen.MinGap, gen.MaxGap)
		}
		if gen.Margin < 0 || 2*gen.Margin+gen.MaxGap > g.Y {
			fail("course.generator margin %g leaves no room for a %g gap above the ground", gen.Margin, gen.MaxGap)
		}
	}

	return errors.Join(errs...)
}

// ValidatePair checks a single obstacle pair against the world geometry.
func (c FlappyConfig) ValidatePair(p PairConfig) error {
	if p.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %g", ErrInvalidConfig, p.Width)
	}
	if p.X < 0 {
		return fmt.Errorf("%w: x must not be negative, got %g", ErrInvalidConfig, p.X)
	}
	if p.GapTop < 0 || p.GapBottom <= p.GapTop {
		return fmt.Errorf("%w: gap [%g, %g] is empty or inverted", ErrInvalidConfig, p.GapTop, p.GapBottom)
	}
	return nil
}
