package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/roborun/internal/core"
)

// Renderer draws entities for one frame. The simulation hands it entities
// and plain values; image loading and fallback colors are its own business.
// Coordinates are in canvas units with the origin at the top-left.
type Renderer interface {
	// Offset shifts every following world draw call, used for screen shake.
	Offset(dx, dy float64)
	// Background draws the checkerboard phase for distance and the grid
	// scrolled by scroll.
	Background(distance, scroll float64)
	Player(p *Player)
	Bullet(b *Bullet)
	Obstacle(o *Obstacle)
	Laser(l *Laser)
	Coin(c *Coin)
	PowerUp(p *PowerUp)
	Explosion(e *Explosion)
	// Text draws text with its top-left corner at (x, y).
	Text(text string, x, y, size float64, c core.Color)
	// Panel draws a centered overlay box.
	Panel(title string, lines ...string)
}

// DarkPhase reports whether the background is in its dark half at distance.
func DarkPhase(distance float64) bool {
	return int(distance)%800 < 400
}

// Draw renders the current phase through r.
func (s *Session) Draw(r Renderer) {
	if s.phase == PhaseStart {
		r.Offset(0, 0)
		r.Background(0, 0)
		r.Panel("ROBORUN",
			"Press R or Enter to start",
			"Arrows/WASD move   Space shoot",
			"P pause   Q quit   F fullscreen",
			fmt.Sprintf("High Score: %d", s.highScore),
		)
		return
	}

	round := s.Round()
	if round == nil {
		return
	}
	round.draw(r, s.now())

	switch s.phase {
	case PhasePaused:
		r.Panel("PAUSED", "Press P or Esc to resume", "Q to quit")
	case PhaseGameOver:
		r.Panel("GAME OVER",
			fmt.Sprintf("Score: %d", round.Score),
			fmt.Sprintf("High Score: %d", s.highScore),
			"R restart   Q title",
		)
	}
}

// Render draws the session into a cell buffer, scaled from canvas units.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.Draw(NewScreenRenderer(dst, s.cfg.Canvas))
}

func (r *Round) draw(dst Renderer, now time.Time) {
	dst.Offset(r.shakeOffset())
	dst.Background(r.Player.Distance, r.BgScroll)
	for _, l := range r.Lasers {
		dst.Laser(l)
	}
	for _, o := range r.Obstacles {
		dst.Obstacle(o)
	}
	for _, c := range r.Coins {
		dst.Coin(c)
	}
	for _, p := range r.PowerUps {
		dst.PowerUp(p)
	}
	for _, b := range r.Bullets {
		dst.Bullet(b)
	}
	for _, e := range r.Explosions {
		dst.Explosion(e)
	}
	if r.Player.Visible() {
		dst.Player(r.Player)
	}

	dst.Offset(0, 0)
	r.drawHUD(dst, now)
}

func (r *Round) drawHUD(dst Renderer, now time.Time) {
	p := r.Player
	dst.Text(fmt.Sprintf("Coins: %d", p.Coins), 10, 10, 24, core.ColorWhite)
	dst.Text(fmt.Sprintf("Distance: %d", int(p.Distance)), 10, 40, 24, core.ColorWhite)
	dst.Text(fmt.Sprintf("Level: %d", r.Difficulty), 10, 70, 24, core.ColorWhite)

	if p.Power.Active() {
		left := p.PowerRemaining(now).Seconds()
		dst.Text(fmt.Sprintf("%s %.1fs", p.Power.Kind, left), r.cfg.Canvas.Width-220, 10, 24, p.Power.Kind.Color())
	}
	if r.AnnouncementTimer > 0 && r.Announcement != "" {
		dst.Text(r.Announcement, r.cfg.Canvas.Width/2-200, r.cfg.Canvas.Height-40, 24, core.ColorBrightGreen)
	}
}

// shakeOffset alternates direction every frame while the shake lasts.
func (r *Round) shakeOffset() (float64, float64) {
	if r.Shake <= 0 {
		return 0, 0
	}
	d := float64(r.Shake)
	if r.Shake%2 == 0 {
		return d, -d / 2
	}
	return -d, d / 2
}

// fadeFeedback winds down the hit flicker and shake after the round ended.
func (r *Round) fadeFeedback() {
	if r.Shake > 0 {
		r.Shake--
	}
	if r.Player.HitTimer > 0 {
		r.Player.HitTimer--
	}
}
