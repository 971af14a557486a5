package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lafriks/go-tiled"
)

// ObstacleGroup is the Tiled object group holding course barriers.
const ObstacleGroup = "obstacles"

// ErrNoObstacleGroup is returned when a map has no "obstacles" object group.
var ErrNoObstacleGroup = errors.New("tiled map has no " + ObstacleGroup + " object group")

// LoadCourseTMX reads obstacle pairs from a Tiled map.
// Each object in the "obstacles" group is a rectangle whose class (or legacy
// type) is "upper" or "lower". Barriers sharing an x offset form one pair; a
// pair may lack either barrier. Pairs are returned ordered by x.
func LoadCourseTMX(path string) ([]PairConfig, error) {
	levelMap, err := tiled.LoadFile(ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	var group *tiled.ObjectGroup
	for _, og := range levelMap.ObjectGroups {
		if og.Name == ObstacleGroup {
			group = og
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoObstacleGroup)
	}

	byX := make(map[float64]*PairConfig)
	for _, o := range group.Objects {
		role := o.Class
		if role == "" {
			role = o.Type //nolint:staticcheck // older TMX files use type=
		}

		pair, ok := byX[o.X]
		if !ok {
			pair = &PairConfig{X: o.X, GapTop: 0, GapBottom: math.Inf(1)}
			byX[o.X] = pair
		}
		pair.Width = math.Max(pair.Width, o.Width)

		switch role {
		case "upper":
			pair.GapTop = o.Y + o.Height
		case "lower":
			pair.GapBottom = o.Y
		default:
			return nil, fmt.Errorf("%s: object %d has unknown barrier role %q", path, o.ID, role)
		}
	}

	pairs := make([]PairConfig, 0, len(byX))
	for _, p := range byX {
		pairs = append(pairs, *p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].X < pairs[j].X
	})

	return pairs, nil
}
