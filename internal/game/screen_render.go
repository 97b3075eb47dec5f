package game

import (
	"math"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Glyphs used by the cell renderer.
const (
	PlayerBody   = '█'
	PlayerEye    = '●'
	DroneBody    = '▓'
	DroneShell   = '░'
	LaserBeam    = '*'
	LaserAnchor  = '■'
	CoinChar     = 'o'
	BulletChar   = '|'
	TrailChar    = '·'
	GridDot      = '·'
	ParticleChar = '*'
)

const gridDotStep = 100

// ScreenRenderer draws a round into a core.Screen, scaling canvas units to
// cells. It keeps no state between frames apart from the shake offset.
type ScreenRenderer struct {
	dst        *core.Screen
	canvasW    float64
	canvasH    float64
	offX, offY float64
}

// NewScreenRenderer maps the canvas onto the whole of dst.
func NewScreenRenderer(dst *core.Screen, canvas config.CanvasConfig) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, canvasW: canvas.Width, canvasH: canvas.Height}
}

// cell converts a canvas point to a cell position.
func (s *ScreenRenderer) cell(x, y float64) (int, int) {
	cx := math.Floor((x + s.offX) * float64(s.dst.Width()) / s.canvasW)
	cy := math.Floor((y + s.offY) * float64(s.dst.Height()) / s.canvasH)
	return int(cx), int(cy)
}

// fill paints every cell covered by r, at least one.
func (s *ScreenRenderer) fill(r core.Rect, ch rune, c core.Color) {
	x0, y0 := s.cell(r.X, r.Y)
	x1, y1 := s.cell(r.Right(), r.Bottom())
	s.dst.FillRect(x0, y0, max(1, x1-x0), max(1, y1-y0), ch, c)
}

func (s *ScreenRenderer) Offset(dx, dy float64) {
	s.offX, s.offY = dx, dy
}

func (s *ScreenRenderer) Background(distance, scroll float64) {
	c := core.ColorLightGray
	if DarkPhase(distance) {
		c = core.ColorDarkGray
	}
	shift := math.Mod(scroll, gridDotStep)
	for x := 0.0; x < s.canvasW; x += gridDotStep {
		for y := 0.0; y < s.canvasH; y += gridDotStep {
			cx, cy := s.cell(x, y+shift)
			s.dst.SetColored(cx, cy, GridDot, c)
		}
	}
}

func (s *ScreenRenderer) Player(p *Player) {
	r := p.Rect()
	s.fill(r, PlayerBody, p.FallbackColor())

	eyeY := r.Y + r.H/3
	lx, ly := s.cell(r.X+r.W/3, eyeY)
	rx, ry := s.cell(r.X+2*r.W/3, eyeY)
	s.dst.SetColored(lx, ly, PlayerEye, core.ColorBrightWhite)
	s.dst.SetColored(rx, ry, PlayerEye, core.ColorBrightWhite)
}

func (s *ScreenRenderer) Bullet(b *Bullet) {
	for _, t := range b.Trail {
		x, y := s.cell(t.X, t.Y)
		s.dst.SetColored(x, y, TrailChar, core.ColorCyan)
	}
	x, y := s.cell(b.X, b.Y)
	s.dst.SetColored(x, y, BulletChar, core.ColorBrightCyan)
}

func (s *ScreenRenderer) Obstacle(o *Obstacle) {
	s.fill(o.Rect(), DroneShell, core.ColorMagenta)
	s.fill(o.Hitbox(), DroneBody, o.FallbackColor())
}

func (s *ScreenRenderer) Laser(l *Laser) {
	ax, ay := s.cell(l.A.X, l.A.Y)
	bx, by := s.cell(l.B.X, l.B.Y)
	c := core.ColorRed
	if l.Glow() > 0.85 {
		c = core.ColorBrightRed
	}
	s.dst.DrawLine(ax, ay, bx, by, LaserBeam, c)
	for _, a := range l.Anchors {
		s.fill(a, LaserAnchor, core.ColorRed)
	}
}

func (s *ScreenRenderer) Coin(c *Coin) {
	x, y := s.cell(c.X, c.Y)
	s.dst.SetColored(x, y, CoinChar, core.ColorBrightYellow)
}

func (s *ScreenRenderer) PowerUp(p *PowerUp) {
	c := p.Kind.Color()
	x0, y0 := s.cell(p.X, p.Y)
	x1, y1 := s.cell(p.X+p.W, p.Y+p.H)
	if x1-x0 >= 3 && y1-y0 >= 3 {
		s.dst.DrawBox(x0, y0, x1-x0, y1-y0, c)
	}
	cx, cy := s.cell(p.X+p.W/2, p.Y+p.H/2)
	s.dst.SetColored(cx, cy, p.Kind.Glyph(), c)
}

func (s *ScreenRenderer) Explosion(e *Explosion) {
	for _, p := range e.Particles {
		if p.Life <= 0 {
			continue
		}
		x, y := s.cell(p.X, p.Y)
		s.dst.SetColored(x, y, ParticleChar, p.Color)
	}
}

func (s *ScreenRenderer) Text(text string, x, y, _ float64, c core.Color) {
	cx, cy := s.cell(x, y)
	s.dst.DrawTextColored(max(0, cx), max(0, cy), text, c)
}

// Panel draws a bordered message box in the center of the screen.
func (s *ScreenRenderer) Panel(title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	boxX := (s.dst.Width() - boxW) / 2
	boxY := (s.dst.Height() - boxH) / 2

	s.dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	s.dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightCyan)

	s.dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		s.dst.DrawTextColored(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorWhite)
	}
}
