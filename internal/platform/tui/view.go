package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Glyphs used to draw the scene.
const (
	glyphBarrier = '█'
	glyphGround  = '▀'
	glyphFlyer   = '●'
	glyphSky     = ' '
)

// viewport maps world units onto screen cells. The camera keeps the flyer
// horizontally centered, clamped to the world edges.
type viewport struct {
	camX   float64
	sx, sy float64
	cols   int
	rows   int
}

// newViewport fits the playfield height into rows and shows a playfield-wide
// slice of the world, following the flyer.
func newViewport(s *flappy.Session, snap flappy.Snapshot, cols, rows int) viewport {
	pf := s.Config().Playfield
	f := s.Flyer()

	return viewport{
		camX: core.FollowX(snap.X+f.W/2, pf.Width, s.Bounds()),
		sx:   float64(cols) / pf.Width,
		sy:   float64(rows) / pf.Height,
		cols: cols,
		rows: rows,
	}
}

// cells converts a world rectangle to a cell rectangle. Anything with a
// positive extent covers at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor((r.X - v.camX) * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil((r.Right() - v.camX) * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0)
}

// drawScene renders the session into the top rows of scr, reserving the last
// row for the status bar. The advisory text comes from the configured messages.
func drawScene(scr *core.Screen, s *flappy.Session, snap flappy.Snapshot, course string, paused bool) {
	scr.Fill(glyphSky)

	rows := scr.Height() - 1
	if rows < 1 || scr.Width() < 1 {
		return
	}
	v := newViewport(s, snap, scr.Width(), rows)

	for _, o := range s.Obstacles() {
		x, y, w, h := v.cells(o.Rect)
		if x >= v.cols || x+w < 0 {
			continue
		}
		scr.FillRect(x, y, w, h, glyphBarrier, core.ColorBarrier)
	}

	x, y, w, h := v.cells(s.Ground())
	scr.FillRect(x, y, w, h, glyphGround, core.ColorGround)

	f := s.Flyer()
	flyerColor := core.ColorFlyer
	if snap.Flags().Any() {
		flyerColor = core.ColorHit
	}
	x, y, w, h = v.cells(core.NewRect(snap.X, snap.Y, f.W, f.H))
	scr.FillRect(x, y, w, h, glyphFlyer, flyerColor)

	if msg := snap.Instruction.Message(s.Config().Messages); msg != "" {
		scr.DrawTextCentered(rows/4, msg, core.ColorText)
	}
	if paused {
		scr.DrawTextCentered(rows/4+2, "PAUSED", core.ColorNotice)
	}

	scr.DrawHLine(0, rows, scr.Width(), ' ', core.ColorDefault)
	scr.DrawTextColored(0, rows, statusLine(snap, course), core.ColorMuted)
}

// statusLine summarizes the snapshot for the bottom bar.
func statusLine(snap flappy.Snapshot, course string) string {
	flags := ""
	if snap.Bumped {
		flags += " BUMPED"
	}
	if snap.Landed {
		flags += " LANDED"
	}
	return fmt.Sprintf(" %s | %-8s | t=%d x=%.0f y=%.0f vy=%+.0f%s",
		course, snap.Phase, snap.Tick, snap.X, snap.Y, snap.VY, flags)
}
