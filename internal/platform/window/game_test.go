package window

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/game"
)

// fakeKeys reports a fixed keyboard state.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.down[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func press(keys ...ebiten.Key) fakeKeys {
	f := fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, k := range keys {
		f.down[k] = true
		f.just[k] = true
	}
	return f
}

func hold(keys ...ebiten.Key) fakeKeys {
	f := fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, k := range keys {
		f.down[k] = true
	}
	return f
}

func TestPollInput(t *testing.T) {
	tests := []struct {
		name     string
		keys     fakeKeys
		expected []core.Action
		absent   []core.Action
	}{
		{"arrow held", hold(ebiten.KeyArrowLeft), []core.Action{core.ActionLeft}, []core.Action{core.ActionRight}},
		{"wasd held", hold(ebiten.KeyW, ebiten.KeyD), []core.Action{core.ActionUp, core.ActionRight}, nil},
		{"space held", hold(ebiten.KeySpace), []core.Action{core.ActionShoot}, nil},
		{"r held is not a restart", hold(ebiten.KeyR), nil, []core.Action{core.ActionStart, core.ActionRestart}},
		{"r pressed", press(ebiten.KeyR), []core.Action{core.ActionStart, core.ActionRestart}, nil},
		{"enter pressed", press(ebiten.KeyEnter), []core.Action{core.ActionStart}, []core.Action{core.ActionRestart}},
		{"escape pressed", press(ebiten.KeyEscape), []core.Action{core.ActionPause}, nil},
		{"f pressed", press(ebiten.KeyF), []core.Action{core.ActionFullscreen}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := pollInput(tc.keys)
			for _, a := range tc.expected {
				if !f.Has(a) {
					t.Errorf("frame missing %v", a)
				}
			}
			for _, a := range tc.absent {
				if f.Has(a) {
					t.Errorf("frame should not contain %v", a)
				}
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	if c := RGBA(core.ColorBrightMagenta); c != (color.RGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Errorf("RGBA(BrightMagenta) = %v, expected drone magenta", c)
	}
	if c := RGBA(core.Color(200)); c != RGBA(core.ColorWhite) {
		t.Errorf("unknown color = %v, expected white", c)
	}
	if c := withAlpha(color.RGBA{R: 200, A: 255}, 0.5); c.R != 100 || c.A != 127 {
		t.Errorf("withAlpha = %v, expected premultiplied half", c)
	}
}

func newTestGame(keys keyState) (*Game, *int) {
	session := game.NewSession(config.DefaultRoboRunConfig(), nil)
	session.Reset(core.RuntimeConfig{Seed: 3, TickRate: 60})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	session.SetClock(func() time.Time { return now })

	g := NewGame(session, nil, Sprites{}, nil)
	g.keys = keys
	toggles := 0
	g.fullscreen = func() { toggles++ }
	return g, &toggles
}

func TestUpdateQuitFromTitle(t *testing.T) {
	g, _ := newTestGame(press(ebiten.KeyQ))
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestUpdateStartsRound(t *testing.T) {
	g, toggles := newTestGame(press(ebiten.KeyEnter, ebiten.KeyF))
	if err := g.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if g.session.Phase() != game.PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", g.session.Phase())
	}
	if *toggles != 1 {
		t.Errorf("fullscreen toggled %d times, expected 1", *toggles)
	}

	g.keys = press(ebiten.KeyQ)
	if err := g.Update(); err != nil {
		t.Errorf("Q during a round should not close the window, got %v", err)
	}
	if g.session.Phase() != game.PhaseStart {
		t.Errorf("Phase() = %v, expected start", g.session.Phase())
	}
}

func TestLayout(t *testing.T) {
	g, _ := newTestGame(hold())
	if w, h := g.Layout(1920, 1080); w != 960 || h != 720 {
		t.Errorf("Layout() = %dx%d, expected 960x720", w, h)
	}
}

func TestTextWidth(t *testing.T) {
	if w := textWidth("abcd", 32); w != 48 {
		t.Errorf("textWidth() = %v, expected 48", w)
	}
}
