package replay

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const hoverThenFly = `
dt: 0.02
steps:
  - ticks: 5
  - ticks: 1
    control: true
  - ticks: 30
`

func TestParseScript(t *testing.T) {
	sc, err := Parse([]byte(hoverThenFly))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if sc.Dt != 0.02 {
		t.Errorf("Dt = %v, expected 0.02", sc.Dt)
	}
	if sc.Ticks() != 36 {
		t.Errorf("Ticks() = %d, expected 36", sc.Ticks())
	}

	frames := sc.Expand()
	if len(frames) != 36 {
		t.Fatalf("Expand() returned %d frames, expected 36", len(frames))
	}
	for i, f := range frames {
		if f.Control != (i == 5) {
			t.Errorf("frame %d control = %v", i, f.Control)
		}
	}
}

func TestParseDefaultsDt(t *testing.T) {
	sc, err := Parse([]byte("steps: [{ticks: 1}]"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if sc.Dt != DefaultDt {
		t.Errorf("Dt = %v, expected %v", sc.Dt, DefaultDt)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no steps", "dt: 0.01"},
		{"zero ticks", "steps: [{ticks: 0}]"},
		{"negative dt", "dt: -1\nsteps: [{ticks: 1}]"},
		{"nan dt", "dt: .nan\nsteps: [{ticks: 1}]"},
		{"too many ticks", "steps: [{ticks: 2000000000}]"},
		{"too many ticks in total", "steps: [{ticks: 600000}, {ticks: 600000, control: true}]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidScript) {
				t.Errorf("Parse() error = %v, expected ErrInvalidScript", err)
			}
		})
	}
}

func TestParseAcceptsTickLimit(t *testing.T) {
	sc, err := Parse([]byte(fmt.Sprintf("steps: [{ticks: %d}]", MaxTicks)))
	if err != nil {
		t.Fatalf("Parse() error = %v, expected a script of exactly MaxTicks to load", err)
	}
	if sc.Ticks() != MaxTicks {
		t.Errorf("Ticks() = %d, expected %d", sc.Ticks(), MaxTicks)
	}
}

func TestRunMatchesManualTicks(t *testing.T) {
	sc, err := Parse([]byte(hoverThenFly))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg := config.DefaultFlappyConfig()
	got := Run(flappy.NewSession(cfg, cfg.Course.Pairs), sc)

	manual := flappy.NewSession(cfg, cfg.Course.Pairs)
	for i, f := range sc.Expand() {
		want := manual.Tick(sc.Dt, f.Control)
		if got[i] != want {
			t.Fatalf("tick %d: Run = %+v, manual = %+v", i, got[i], want)
		}
	}

	if got[4].Phase != flappy.PhaseIdle || got[5].Phase != flappy.PhaseActive {
		t.Errorf("expected the start on tick 5, got %v then %v", got[4].Phase, got[5].Phase)
	}
}

func TestRunPlaceForcesCollision(t *testing.T) {
	sc, err := Parse([]byte(`
steps:
  - ticks: 1
    control: true
  - ticks: 2
    place: {x: 84, y: 560}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg := config.DefaultFlappyConfig()
	snaps := Run(flappy.NewSession(cfg, cfg.Course.Pairs), sc)

	if !snaps[1].Landed {
		t.Error("placing the flyer in the ground should land it")
	}
	if snaps[2].Phase != flappy.PhaseTerminal {
		t.Errorf("phase = %v, expected Terminal after landing", snaps[2].Phase)
	}
}

func TestWriteTrace(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := flappy.NewSession(cfg, cfg.Course.Pairs)
	snaps := []flappy.Snapshot{s.Tick(DefaultDt, false), s.Tick(DefaultDt, true)}

	var table bytes.Buffer
	if err := WriteTrace(&table, snaps, FormatTable); err != nil {
		t.Fatalf("WriteTrace(table) error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, expected header plus 2 rows", len(lines))
	}
	if !strings.Contains(lines[2], "Active") {
		t.Errorf("second row should show Active, got %q", lines[2])
	}

	var doc bytes.Buffer
	if err := WriteTrace(&doc, snaps, FormatYAML); err != nil {
		t.Fatalf("WriteTrace(yaml) error = %v", err)
	}
	if !strings.Contains(doc.String(), "instruction: ascend") {
		t.Errorf("yaml trace missing instruction key:\n%s", doc.String())
	}

	if err := WriteTrace(&doc, snaps, "xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("WriteTrace(xml) error = %v, expected ErrUnknownFormat", err)
	}
}
