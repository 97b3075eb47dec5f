// Package window runs RoboRun in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/game"
	"github.com/vovakirdan/roborun/internal/platform"
	"github.com/vovakirdan/roborun/internal/storage"
)

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session    *game.Session
	store      *storage.Store
	logger     *log.Logger
	keys       keyState
	renderer   *imageRenderer
	fullscreen func()
}

// NewGame creates a window game around session.
func NewGame(session *game.Session, store *storage.Store, sprites Sprites, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session:  session,
		store:    store,
		logger:   logger,
		keys:     ebitenKeys{},
		renderer: newImageRenderer(session.Config(), sprites),
		fullscreen: func() {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		},
	}
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	in := pollInput(g.keys)

	if in.Has(core.ActionFullscreen) {
		g.fullscreen()
	}
	if in.Has(core.ActionQuit) && g.session.Phase() == game.PhaseStart {
		return ebiten.Termination
	}

	res := g.session.Step(in)
	if res.Finished != nil {
		platform.Record(g.store, *res.Finished, g.logger)
	}
	return nil
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.begin(screen)
	g.session.Draw(g.renderer)
}

// Layout keeps the logical canvas size; ebiten letterboxes it into the window.
func (g *Game) Layout(_, _ int) (int, int) {
	c := g.session.Config().Canvas
	return int(c.Width), int(c.Height)
}

// Run opens the window and blocks until the player quits.
func Run(session *game.Session, store *storage.Store, cfg core.RuntimeConfig, assetsDir string, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session.Reset(cfg)
	platform.SeedHighScore(session, store, logger)

	canvas := session.Config().Canvas
	ebiten.SetWindowSize(int(canvas.Width), int(canvas.Height))
	ebiten.SetWindowTitle("RoboRun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	g := NewGame(session, store, LoadSprites(assetsDir, logger), logger)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
