// flappy is a side-scrolling flyer that runs in the terminal, in a desktop
// window, or over SSH.
//
// Usage:
//
//	flappy list                 - List available courses
//	flappy play                 - Play in the terminal
//	flappy window               - Play in a desktop window
//	flappy serve                - Start SSH server for remote play
//	flappy simulate <script>    - Run an input script headless and print the trace
//	flappy defaults             - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for the endless course
//	--config <path>     - Load a custom config YAML
//	--course <id>       - Pick a course (default: config course.name)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagCourse   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the gaps",
	Long: `Flappy is a side-scrolling flyer. Hold the control to climb, release
it to fall, and pass through the gaps without touching a barrier or the ground.

Available commands:
  list      - Show all available courses
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run an input script without a front-end
  defaults  - Print the default config YAML

Examples:
  flappy list
  flappy play
  flappy play --course endless --seed 42
  flappy window --config ./my-flappy.yaml
  flappy serve --ssh :2222
  flappy simulate ./scripts/hover.yaml --format yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for generated courses (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCourse, "course", "", "Course ID (default: course.name from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the logger for a command. With no --log-file, logs go to
// fallback; full-screen front-ends pass io.Discard so logs do not tear the
// display. The returned closer releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(config.ExpandHome(flagLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the flyer config and logs where it came from.
func loadConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// courseID returns the course to play: --course, then the config's course.name.
func courseID(cfg config.FlappyConfig) string {
	if flagCourse != "" {
		return flagCourse
	}
	if cfg.Course.Name != "" {
		return cfg.Course.Name
	}
	return flappy.CourseClassic
}

// playSeed returns --seed, or a time-based seed when it is 0.
func playSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newSession loads the config and builds a session on the selected course.
func newSession(logger *log.Logger, seed int64) (*flappy.Session, string, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, "", err
	}

	course := courseID(cfg)
	if !registry.Exists(course) {
		return nil, "", fmt.Errorf("unknown course %q, run 'flappy list' to see available courses", course)
	}

	session, err := flappy.New(cfg, course, seed)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("session created", "course", course, "seed", seed, "pairs", session.Pairs())
	return session, course, nil
}
