// Package flappy implements the flyer simulation: a phase state machine and a
// fixed-step physics and collision engine. The flyer hovers until the control
// is first pressed, then flies forward under gravity, ascending at a capped
// rate while the control is held, until it touches a barrier or the ground.
//
// The package is headless. Front-ends drive it with Session.Tick and read
// Snapshots; nothing here draws, polls devices or samples clocks.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Snapshot is the per-tick state a front-end needs to present the session.
type Snapshot struct {
	Tick        uint64 // Ticks completed since the last reset
	X, Y        float64
	VX, VY      float64
	Phase       Phase
	Bumped      bool
	Landed      bool
	Instruction Instruction
}

// Flags returns the snapshot's collision flags.
func (s Snapshot) Flags() CollisionFlags {
	return CollisionFlags{Bumped: s.Bumped, Landed: s.Landed}
}

// Session is one play-through: one flyer, one ground and a fixed course.
// A Session is not safe for concurrent use; run one per goroutine.
type Session struct {
	cfg    config.FlappyConfig
	pairs  []config.PairConfig
	ctrl   PhaseController
	engine *Engine
	ticks  uint64
}

// NewSession creates a session over the given obstacle pairs.
func NewSession(cfg config.FlappyConfig, pairs []config.PairConfig) *Session {
	s := &Session{
		cfg:   cfg,
		pairs: append([]config.PairConfig(nil), pairs...),
	}
	s.Reset()
	return s
}

// New builds the registered course courseID and creates a session on it.
func New(cfg config.FlappyConfig, courseID string, seed int64) (*Session, error) {
	pairs, err := registry.Build(courseID, cfg, seed)
	if err != nil {
		return nil, err
	}
	return NewSession(cfg, pairs), nil
}

// Reset starts a new play-through on the same course: a fresh flyer at the
// spawn point, PhaseIdle and cleared flags.
func (s *Session) Reset() {
	f := s.cfg.Flyer
	flyer := Flyer{
		X:      f.X,
		Y:      f.Y,
		W:      f.Width,
		H:      f.Height,
		Bounce: s.cfg.Physics.Bounce,
	}

	s.ctrl.Reset()
	s.engine = NewEngine(s.cfg.Physics, BuildCourse(s.cfg, s.pairs), flyer)
	s.ticks = 0
}

// Tick advances the session by one step of dt seconds.
//
// The phase controller runs first with this tick's control input and the
// collision flags raised so far, so a hit is observed by the controller on
// the tick after it happens. The engine then steps under the resulting
// phase and collision detection updates the flags.
//
// A NaN, infinite or negative dt is treated as zero: rules still apply but
// nothing moves.
func (s *Session) Tick(dt float64, controlPressed bool) Snapshot {
	phase := s.ctrl.Tick(controlPressed, s.engine.Flags().Any())
	s.engine.Step(dt, controlPressed, phase)
	s.ticks++
	return s.Snapshot()
}

// Snapshot returns the current state without advancing.
func (s *Session) Snapshot() Snapshot {
	f := s.engine.Flyer()
	flags := s.engine.Flags()
	phase := s.ctrl.Phase()
	return Snapshot{
		Tick:        s.ticks,
		X:           f.X,
		Y:           f.Y,
		VX:          f.VX,
		VY:          f.VY,
		Phase:       phase,
		Bumped:      flags.Bumped,
		Landed:      flags.Landed,
		Instruction: InstructionFor(phase),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.ctrl.Phase()
}

// Flyer returns a copy of the flyer, including its extent.
func (s *Session) Flyer() Flyer {
	return s.engine.Flyer()
}

// Obstacles returns the course barriers in order. Callers must not modify them.
func (s *Session) Obstacles() []Obstacle {
	return s.engine.Course().Obstacles
}

// Pairs returns the number of obstacle pairs on the course.
func (s *Session) Pairs() int {
	return s.engine.Course().PairCount()
}

// Ground returns the ground rectangle.
func (s *Session) Ground() core.Rect {
	return s.engine.Course().Ground
}

// Bounds returns the world rectangle the flyer is confined to.
func (s *Session) Bounds() core.Rect {
	return s.engine.Course().Bounds
}

// Config returns the configuration the session was built from.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Place forces the flyer to (x, y), keeping its velocity. It exists for
// debugging and replay tooling; the next Tick detects any overlap it causes.
func (s *Session) Place(x, y float64) {
	s.engine.Place(x, y)
}
