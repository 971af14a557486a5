package flappy

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Collision tags for static bodies in the spatial index.
const (
	tagBarrier = "barrier"
	tagGround  = "ground"
	tagFlyer   = "flyer"
)

// cellSize is the broadphase grid cell edge in world units.
const cellSize = 16

// groundIndex marks the ground in a contact list.
const groundIndex = -1

// world indexes the course's static bodies in a resolv space so each tick
// only tests the flyer against nearby bodies.
type world struct {
	course *Course
	space  *resolv.Space
	probe  *resolv.Object
}

// newWorld builds the spatial index for a course. The probe object tracks
// the flyer's bounding box.
func newWorld(course *Course, flyer core.Rect) *world {
	b := course.Bounds
	space := resolv.NewSpace(
		int(math.Ceil(b.W))+cellSize,
		int(math.Ceil(b.H))+cellSize,
		cellSize, cellSize,
	)

	for i, o := range course.Obstacles {
		obj := resolv.NewObject(o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, tagBarrier)
		obj.Data = i
		space.Add(obj)
	}

	g := course.Ground
	ground := resolv.NewObject(g.X, g.Y, g.W, g.H, tagGround)
	ground.Data = groundIndex
	space.Add(ground)

	probe := resolv.NewObject(flyer.X, flyer.Y, flyer.W, flyer.H, tagFlyer)
	space.Add(probe)

	return &world{
		course: course,
		space:  space,
		probe:  probe,
	}
}

// contacts returns the bodies whose boxes strictly overlap r, as obstacle
// indices in course order followed by groundIndex if the ground is hit.
// resolv narrows the search to bodies sharing grid cells; the exact AABB
// test decides.
func (w *world) contacts(r core.Rect) []int {
	w.probe.X, w.probe.Y = r.X, r.Y
	w.probe.W, w.probe.H = r.W, r.H
	w.probe.Update()

	check := w.probe.Check(0, 0, tagBarrier, tagGround)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool, len(check.Objects))
	hits := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true

		body := w.course.Ground
		if idx != groundIndex {
			body = w.course.Obstacles[idx].Rect
		}
		if r.Intersects(body) {
			hits = append(hits, idx)
		}
	}

	// Cell iteration order is not stable; sort so contact resolution is.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i] == groundIndex || hits[j] == groundIndex {
			return hits[j] == groundIndex && hits[i] != groundIndex
		}
		return hits[i] < hits[j]
	})
	return hits
}

// body returns the rectangle for a contact index.
func (w *world) body(idx int) core.Rect {
	if idx == groundIndex {
		return w.course.Ground
	}
	return w.course.Obstacles[idx].Rect
}
