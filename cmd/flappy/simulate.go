package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

var (
	flagFormat string
	flagOut    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>",
	Short: "Run an input script headless and print the trajectory",
	Long: `Play a YAML input script through a session without any front-end and
print one row per tick. Runs are deterministic: the same script, config,
course and seed always produce the same trace.

Script format:
  dt: 0.0166667        # seconds per tick (default 1/60)
  steps:
    - ticks: 30        # hover for half a second
    - ticks: 10
      control: true    # start and climb
    - ticks: 60
    - ticks: 1
      place: {x: 84, y: 560}   # force the flyer into the ground

Examples:
  flappy simulate ./hover.yaml
  flappy simulate ./run.yaml --course endless --seed 12345 --format yaml --out trace.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagFormat, "format", replay.FormatTable, "Trace format: table or yaml")
	simulateCmd.Flags().StringVar(&flagOut, "out", "", "Write the trace to a file instead of stdout")
}

func runSimulate(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	// The seed is used as given so runs repeat exactly
	session, course, err := newSession(logger, flagSeed)
	if err != nil {
		return err
	}

	snaps := replay.Run(session, script)
	logger.Info("simulation finished",
		"course", course,
		"ticks", len(snaps),
		"phase", session.Phase(),
	)

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(config.ExpandHome(flagOut))
		if err != nil {
			return fmt.Errorf("create trace file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return replay.WriteTrace(out, snaps, flagFormat)
}
