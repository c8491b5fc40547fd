//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"cardiogen/internal/anim"
	"cardiogen/internal/culture"
	"cardiogen/pkg/core"
)

// Game sweeps the configured day range in a loop, recomposing preview
// frames as the day advances. Frames snap to half-day keys and come out of
// the session cache, so the stochastic detail stays steady while the
// culture develops.
type Game struct {
	cfg   culture.Config
	speed anim.Speed

	rng    *core.RNG
	interp *culture.Interpolator
	cache  *anim.Cache

	tween *gween.Tween
	timer *FixedStep
	day   float64

	canvas *ebiten.Image
	scale  int
	paused bool
}

// New constructs a viewer over the configured day range.
func New(cfg culture.Config, speed anim.Speed, scale int) *Game {
	g := &Game{
		cfg:    cfg,
		speed:  speed,
		rng:    core.NewRNG(cfg.Seed),
		interp: culture.NewInterpolator(),
		cache:  anim.NewCache(),
		timer:  NewFixedStep(30),
		day:    cfg.DayMin,
		canvas: ebiten.NewImage(cfg.Width, cfg.Height),
		scale:  scale,
	}
	g.tween = g.newSweep()
	return g
}

// newSweep builds a linear day tween whose duration matches what the
// assembled artifact would take to play at the chosen speed.
func (g *Game) newSweep() *gween.Tween {
	frames := anim.Keyframes(g.cfg.DayMin, g.cfg.DayMax)
	duration := float32(frames) * float32(g.speed.DelayMS()) / 1000
	return gween.New(float32(g.cfg.DayMin), float32(g.cfg.DayMax), duration, ease.Linear)
}

// Restart rewinds the sweep to the start of the day range.
func (g *Game) Restart() {
	g.tween = g.newSweep()
	g.day = g.cfg.DayMin
}

// Update handles input and advances the day sweep.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.rng = core.NewRNG(time.Now().UnixNano())
		g.cache = anim.NewCache()
		g.Restart()
	}

	if g.paused || !g.timer.ShouldStep() {
		return nil
	}

	day, finished := g.tween.Update(float32(g.timer.Step().Seconds()))
	g.day = float64(day)
	if finished {
		g.Restart()
	}
	return nil
}

// Draw renders the cached preview frame for the current day.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.cache.Preview(g.rng, g.interp, g.day, g.cfg.Width, g.cfg.Height)
	g.canvas.WritePixels(frame.Img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.scale, g.cfg.Height * g.scale
}
