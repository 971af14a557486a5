package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestWorld() *world {
	cfg := config.DefaultFlappyConfig()
	course := BuildCourse(cfg, cfg.Course.Pairs)
	return newWorld(&course, core.NewRect(84, 284, 32, 32))
}

func TestWorldContacts(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		name string
		r    core.Rect
		want []int
	}{
		{"open air", core.NewRect(84, 284, 32, 32), nil},
		{"upper barrier", core.NewRect(180, 100, 32, 32), []int{0}},
		{"lower barrier and ground", core.NewRect(470, 540, 32, 40), []int{3, groundIndex}},
		{"ground only", core.NewRect(10, 560, 32, 32), []int{groundIndex}},
		{"touching barrier edge", core.NewRect(136, 100, 32, 32), nil},
		{"resting on ground", core.NewRect(10, 536, 32, 32), nil},
		{"spanning both barriers of a pair", core.NewRect(170, 190, 20, 170), []int{0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := w.contacts(tc.r)
			if len(got) != len(tc.want) {
				t.Fatalf("contacts() = %v, expected %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("contacts() = %v, expected %v", got, tc.want)
				}
			}
		})
	}
}

func TestWorldBody(t *testing.T) {
	w := newTestWorld()

	if w.body(groundIndex) != w.course.Ground {
		t.Error("ground index should map to the ground rectangle")
	}
	if w.body(2) != w.course.Obstacles[2].Rect {
		t.Error("obstacle index should map to its rectangle")
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		v, normal, bounce, want float64
	}{
		{100, -1, 0.2, -20}, // moving down into a floor
		{-100, 1, 0.2, 20},  // moving up into a ceiling
		{-100, -1, 0.2, -100},
		{50, 0, 0.2, 50},
		{0, 1, 0.2, 0},
	}
	for _, tc := range tests {
		if got := reflect(tc.v, tc.normal, tc.bounce); got != tc.want {
			t.Errorf("reflect(%v, %v, %v) = %v, expected %v", tc.v, tc.normal, tc.bounce, got, tc.want)
		}
	}
}
