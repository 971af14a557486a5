// Package replay runs scripted control sequences through a session without a
// front-end. Scripts are YAML files listing how many ticks to hold or release
// the control, which makes runs repeatable for debugging and regression tests.
package replay

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// DefaultDt is the tick length used when a script does not set one.
const DefaultDt = 1.0 / 60.0

// MaxTicks caps the total length of a script, a little over four and a half
// hours at DefaultDt.
const MaxTicks = 1_000_000

// ErrInvalidScript is wrapped by every script validation failure.
var ErrInvalidScript = errors.New("invalid script")

// Position forces the flyer to a point before a step runs.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Step holds the control state for a run of consecutive ticks.
type Step struct {
	Ticks   int       `yaml:"ticks"`
	Control bool      `yaml:"control"`
	Place   *Position `yaml:"place,omitempty"`
}

// Script is a sequence of steps played at a fixed tick length.
type Script struct {
	Dt    float64 `yaml:"dt"`
	Steps []Step  `yaml:"steps"`
}

// Frame is the input for a single tick.
type Frame struct {
	Control bool
	Place   *Position // Applied before the tick, first frame of a step only
}

// Load reads and validates a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(config.ExpandHome(path))
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML script. A missing dt defaults to DefaultDt.
func Parse(data []byte) (Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, err
	}
	if sc.Dt == 0 {
		sc.Dt = DefaultDt
	}
	if err := sc.Validate(); err != nil {
		return Script{}, err
	}
	return sc, nil
}

// Validate reports every malformed field at once.
func (sc Script) Validate() error {
	var errs []error
	if math.IsNaN(sc.Dt) || math.IsInf(sc.Dt, 0) || sc.Dt <= 0 {
		errs = append(errs, fmt.Errorf("%w: dt must be a positive number, got %g", ErrInvalidScript, sc.Dt))
	}
	if len(sc.Steps) == 0 {
		errs = append(errs, fmt.Errorf("%w: no steps", ErrInvalidScript))
	}
	total := 0
	for i, st := range sc.Steps {
		if st.Ticks <= 0 {
			errs = append(errs, fmt.Errorf("%w: steps[%d].ticks must be positive, got %d", ErrInvalidScript, i, st.Ticks))
			continue
		}
		if total <= MaxTicks {
			total += min(st.Ticks, MaxTicks+1)
		}
	}
	if total > MaxTicks {
		errs = append(errs, fmt.Errorf("%w: script runs more than %d ticks", ErrInvalidScript, MaxTicks))
	}
	return errors.Join(errs...)
}

// Ticks returns the total number of ticks the script covers.
func (sc Script) Ticks() int {
	n := 0
	for _, st := range sc.Steps {
		n += st.Ticks
	}
	return n
}

// Expand flattens the steps into one frame per tick.
func (sc Script) Expand() []Frame {
	frames := make([]Frame, 0, sc.Ticks())
	for _, st := range sc.Steps {
		for i := 0; i < st.Ticks; i++ {
			f := Frame{Control: st.Control}
			if i == 0 {
				f.Place = st.Place
			}
			frames = append(frames, f)
		}
	}
	return frames
}

// Run plays the script on s from its current state and returns the snapshot
// after every tick. The session is not reset first.
func Run(s *flappy.Session, sc Script) []flappy.Snapshot {
	frames := sc.Expand()
	out := make([]flappy.Snapshot, 0, len(frames))
	for _, f := range frames {
		if f.Place != nil {
			s.Place(f.Place.X, f.Place.Y)
		}
		out = append(out, s.Tick(sc.Dt, f.Control))
	}
	return out
}
