package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Phase is the coarse session state governing which velocity rules apply.
// Phases only advance: Idle -> Active -> Terminal.
type Phase int

const (
	PhaseIdle     Phase = iota // Hovering, waiting for the first control press
	PhaseActive                // Flying through the course
	PhaseTerminal              // Bumped or landed; absorbing
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Instruction identifies the advisory message a front-end should show.
// The simulation never owns the text itself.
type Instruction int

const (
	InstructionNone    Instruction = iota
	InstructionStart               // "press control to start"
	InstructionAscend              // "use control to ascend"
	InstructionRestart             // the session is over
)

// String returns the message key for the instruction.
func (i Instruction) String() string {
	switch i {
	case InstructionStart:
		return "start"
	case InstructionAscend:
		return "ascend"
	case InstructionRestart:
		return "restart"
	default:
		return "none"
	}
}

// Message looks up the configured text for the instruction.
func (i Instruction) Message(m config.Messages) string {
	switch i {
	case InstructionStart:
		return m.Start
	case InstructionAscend:
		return m.Ascend
	case InstructionRestart:
		return m.Restart
	default:
		return ""
	}
}

// InstructionFor returns the advisory message for a phase.
func InstructionFor(p Phase) Instruction {
	switch p {
	case PhaseIdle:
		return InstructionStart
	case PhaseActive:
		return InstructionAscend
	case PhaseTerminal:
		return InstructionRestart
	default:
		return InstructionNone
	}
}

// PhaseController owns the session's phase state machine.
// The zero value starts in PhaseIdle.
type PhaseController struct {
	phase Phase
}

// Phase returns the current phase.
func (c *PhaseController) Phase() Phase {
	return c.phase
}

// Tick consumes the control input and the collision signal for one step and
// returns the resulting phase. The transition table is total:
//
//	Idle     + control  -> Active (one-shot)
//	Active   + collided -> Terminal
//	Terminal            -> Terminal (input ignored)
//
// Every other combination keeps the current phase.
func (c *PhaseController) Tick(controlPressed, collided bool) Phase {
	switch c.phase {
	case PhaseIdle:
		if controlPressed {
			c.phase = PhaseActive
		}
	case PhaseActive:
		if collided {
			c.phase = PhaseTerminal
		}
	}
	return c.phase
}

// Reset returns the controller to PhaseIdle for a new session.
func (c *PhaseController) Reset() {
	c.phase = PhaseIdle
}
