package replay

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Trace output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned by WriteTrace for unsupported formats.
var ErrUnknownFormat = errors.New("unknown trace format")

type traceRow struct {
	Tick        uint64  `yaml:"tick"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
	Phase       string  `yaml:"phase"`
	Bumped      bool    `yaml:"bumped"`
	Landed      bool    `yaml:"landed"`
	Instruction string  `yaml:"instruction"`
}

func rowOf(s flappy.Snapshot) traceRow {
	return traceRow{
		Tick:        s.Tick,
		X:           s.X,
		Y:           s.Y,
		VX:          s.VX,
		VY:          s.VY,
		Phase:       s.Phase.String(),
		Bumped:      s.Bumped,
		Landed:      s.Landed,
		Instruction: s.Instruction.String(),
	}
}

// WriteTrace writes one line (table) or one document entry (yaml) per snapshot.
func WriteTrace(w io.Writer, snaps []flappy.Snapshot, format string) error {
	switch format {
	case FormatTable, "":
		return writeTable(w, snaps)
	case FormatYAML:
		rows := make([]traceRow, len(snaps))
		for i, s := range snaps {
			rows[i] = rowOf(s)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeTable(w io.Writer, snaps []flappy.Snapshot) error {
	if _, err := fmt.Fprintf(w, "%6s %9s %9s %8s %8s %-8s %-6s %-6s\n",
		"tick", "x", "y", "vx", "vy", "phase", "bump", "land"); err != nil {
		return err
	}
	for _, s := range snaps {
		if _, err := fmt.Fprintf(w, "%6d %9.3f %9.3f %8.3f %8.3f %-8s %-6t %-6t\n",
			s.Tick, s.X, s.Y, s.VX, s.VY, s.Phase, s.Bumped, s.Landed); err != nil {
			return err
		}
	}
	return nil
}
