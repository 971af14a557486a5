package flappy

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Registered course IDs.
const (
	CourseClassic = "classic"
	CourseEndless = "endless"
	CourseOpen    = "open"
	CourseTMX     = "tmx"
)

// ErrNoTMXPath is returned by the tmx course when course.tmx is unset.
var ErrNoTMXPath = errors.New("course.tmx is not set")

func init() {
	registry.Register(CourseClassic, "Classic (configured pairs)", func(cfg config.FlappyConfig, _ int64) ([]config.PairConfig, error) {
		return append([]config.PairConfig(nil), cfg.Course.Pairs...), nil
	})

	registry.Register(CourseEndless, "Endless (seeded generator)", func(cfg config.FlappyConfig, seed int64) ([]config.PairConfig, error) {
		return GeneratePairs(cfg, seed), nil
	})

	registry.Register(CourseOpen, "Open sky (no obstacles)", func(config.FlappyConfig, int64) ([]config.PairConfig, error) {
		return nil, nil
	})

	registry.Register(CourseTMX, "Tiled map (course.tmx)", func(cfg config.FlappyConfig, _ int64) ([]config.PairConfig, error) {
		if cfg.Course.TMX == "" {
			return nil, ErrNoTMXPath
		}
		pairs, err := config.LoadCourseTMX(cfg.Course.TMX)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			if err := cfg.ValidatePair(p); err != nil {
				return nil, err
			}
		}
		return pairs, nil
	})
}
