package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// GeneratePairs lays out a seeded course of evenly spaced obstacle pairs.
// The whole course is generated up front so the session geometry stays
// immutable; the same configuration and seed always yield the same course.
func GeneratePairs(cfg config.FlappyConfig, seed int64) []config.PairConfig {
	gen := cfg.Course.Generator
	if gen.Count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	pairs := make([]config.PairConfig, 0, gen.Count)

	for i := 0; i < gen.Count; i++ {
		// Random gap size between min and max
		gapHeight := gen.MinGap
		if gen.MaxGap > gen.MinGap {
			gapHeight += rng.Float64() * (gen.MaxGap - gen.MinGap)
		}

		// Valid range for the top of the gap
		minGapY := gen.Margin
		maxGapY := cfg.Ground.Y - gen.Margin - gapHeight
		if maxGapY < minGapY {
			maxGapY = minGapY // Edge case for very short playfields
		}

		gapY := minGapY
		if maxGapY > minGapY {
			gapY += rng.Float64() * (maxGapY - minGapY)
		}

		pairs = append(pairs, config.PairConfig{
			X:         gen.FirstX + float64(i)*gen.Spacing,
			GapTop:    gapY,
			GapBottom: gapY + gapHeight,
		})
	}

	return pairs
}
