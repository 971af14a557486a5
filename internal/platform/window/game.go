// Package window runs the flyer in a desktop window using ebiten. Ebiten's
// Update loop is the fixed-step scheduler: one session tick per update at
// the configured TPS.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Scene colors.
var (
	skyColor     = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	barrierColor = color.RGBA{0x55, 0x8b, 0x2f, 0xff}
	groundColor  = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	flyerColor   = color.RGBA{0xf7, 0xd3, 0x08, 0xff}
	hitColor     = color.RGBA{0xe0, 0x3c, 0x31, 0xff}
	textColor    = color.White
)

// Keys that drive the single flight control.
var controlKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *flappy.Session
	course  string
	dt      float64
	last    flappy.Snapshot
	paused  bool
	logger  *log.Logger

	messageFace *text.GoTextFace
	statusFace  *text.GoTextFace
}

// NewGame wraps a session. A nil logger discards output.
func NewGame(session *flappy.Session, course string, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	return &Game{
		session:     session,
		course:      course,
		dt:          cfg.TickSeconds(),
		last:        session.Snapshot(),
		logger:      logger.With("course", course),
		messageFace: &text.GoTextFace{Source: source, Size: 24},
		statusFace:  &text.GoTextFace{Source: source, Size: 14},
	}, nil
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused, "tick", g.last.Tick)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.last.Phase == flappy.PhaseTerminal {
		g.session.Reset()
		g.last = g.session.Snapshot()
		g.logger.Debug("session restarted")
		return nil
	}
	if g.paused {
		return nil
	}

	control := false
	for _, k := range controlKeys {
		if ebiten.IsKeyPressed(k) {
			control = true
			break
		}
	}

	snap := g.session.Tick(g.dt, control)
	if snap.Phase != g.last.Phase {
		g.logger.Debug("phase changed", "from", g.last.Phase, "to", snap.Phase, "tick", snap.Tick)
	}
	g.last = snap
	return nil
}

// Draw renders the visible slice of the world in playfield coordinates.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	pf := g.session.Config().Playfield
	f := g.session.Flyer()
	camX := core.FollowX(g.last.X+f.W/2, pf.Width, g.session.Bounds())

	fill := func(r core.Rect, c color.Color) {
		if r.Right() < camX || r.X > camX+pf.Width {
			return
		}
		vector.DrawFilledRect(screen, float32(r.X-camX), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}

	for _, o := range g.session.Obstacles() {
		fill(o.Rect, barrierColor)
	}
	fill(g.session.Ground(), groundColor)

	body := flyerColor
	if g.last.Flags().Any() {
		body = hitColor
	}
	fill(core.NewRect(g.last.X, g.last.Y, f.W, f.H), body)

	if msg := g.last.Instruction.Message(g.session.Config().Messages); msg != "" {
		g.drawText(screen, msg, g.messageFace, pf.Width/2, pf.Height/6, text.AlignCenter)
	}
	if g.paused {
		g.drawText(screen, "PAUSED", g.messageFace, pf.Width/2, pf.Height/6+40, text.AlignCenter)
	}

	status := fmt.Sprintf("%s  %s  t=%d  vy=%+.0f  %.0f TPS", g.course, g.last.Phase, g.last.Tick, g.last.VY, ebiten.ActualTPS())
	g.drawText(screen, status, g.statusFace, 8, 8, text.AlignStart)
}

func (g *Game) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// Layout fixes the logical screen to the playfield; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	pf := g.session.Config().Playfield
	return int(pf.Width), int(pf.Height)
}

// Run opens a window and blocks until it is closed.
func Run(session *flappy.Session, course string, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := NewGame(session, course, cfg, logger)
	if err != nil {
		return err
	}

	pf := session.Config().Playfield
	ebiten.SetWindowSize(int(pf.Width), int(pf.Height))
	ebiten.SetWindowTitle("flappy - " + course)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Rate())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
