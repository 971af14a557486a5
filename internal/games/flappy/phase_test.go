package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestPhaseControllerTransitions(t *testing.T) {
	tests := []struct {
		from     Phase
		control  bool
		collided bool
		want     Phase
	}{
		{PhaseIdle, false, false, PhaseIdle},
		{PhaseIdle, false, true, PhaseIdle},
		{PhaseIdle, true, false, PhaseActive},
		{PhaseIdle, true, true, PhaseActive},
		{PhaseActive, false, false, PhaseActive},
		{PhaseActive, true, false, PhaseActive},
		{PhaseActive, false, true, PhaseTerminal},
		{PhaseActive, true, true, PhaseTerminal},
		{PhaseTerminal, false, false, PhaseTerminal},
		{PhaseTerminal, true, false, PhaseTerminal},
		{PhaseTerminal, false, true, PhaseTerminal},
		{PhaseTerminal, true, true, PhaseTerminal},
	}

	for _, tc := range tests {
		c := PhaseController{phase: tc.from}
		got := c.Tick(tc.control, tc.collided)
		if got != tc.want {
			t.Errorf("%v + control=%v collided=%v = %v, expected %v", tc.from, tc.control, tc.collided, got, tc.want)
		}
		if c.Phase() != got {
			t.Errorf("Phase() = %v after Tick returned %v", c.Phase(), got)
		}
	}
}

func TestPhaseControllerStartIsOneShot(t *testing.T) {
	var c PhaseController

	if c.Phase() != PhaseIdle {
		t.Fatalf("zero controller should be Idle, got %v", c.Phase())
	}

	c.Tick(true, false)
	for i := 0; i < 5; i++ {
		if got := c.Tick(true, false); got != PhaseActive {
			t.Fatalf("repeated presses should keep Active, got %v", got)
		}
	}

	c.Reset()
	if c.Phase() != PhaseIdle {
		t.Errorf("Reset should return to Idle, got %v", c.Phase())
	}
}

func TestInstructionFor(t *testing.T) {
	tests := map[Phase]Instruction{
		PhaseIdle:     InstructionStart,
		PhaseActive:   InstructionAscend,
		PhaseTerminal: InstructionRestart,
		Phase(42):     InstructionNone,
	}
	for phase, want := range tests {
		if got := InstructionFor(phase); got != want {
			t.Errorf("InstructionFor(%v) = %v, expected %v", phase, got, want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseTerminal.String() != "Terminal" {
		t.Errorf("PhaseTerminal.String() = %q", PhaseTerminal.String())
	}
	if Phase(7).String() != "Unknown" {
		t.Errorf("Phase(7).String() = %q", Phase(7).String())
	}
}

func TestInstructionMessage(t *testing.T) {
	msgs := config.DefaultFlappyConfig().Messages

	if got := InstructionStart.Message(msgs); got != msgs.Start {
		t.Errorf("start message = %q, expected %q", got, msgs.Start)
	}
	if got := InstructionAscend.Message(msgs); got != "Use UP arrow to fly!" {
		t.Errorf("ascend message = %q", got)
	}
	if got := InstructionNone.Message(msgs); got != "" {
		t.Errorf("none should have no message, got %q", got)
	}
	if InstructionRestart.String() != "restart" {
		t.Errorf("InstructionRestart.String() = %q", InstructionRestart.String())
	}
}
