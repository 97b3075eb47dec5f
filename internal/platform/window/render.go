package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
	"github.com/vovakirdan/roborun/internal/game"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

const (
	gridLineStep = 50
	gridDotStep  = 100
)

// imageRenderer draws a session onto an ebiten image in canvas units.
type imageRenderer struct {
	dst     *ebiten.Image
	cfg     config.RoboRunConfig
	sprites Sprites
	text    *ebiten.Image // Scratch buffer for scaled debug text

	offX, offY float32
}

func newImageRenderer(cfg config.RoboRunConfig, sprites Sprites) *imageRenderer {
	return &imageRenderer{cfg: cfg, sprites: sprites}
}

// begin targets dst for the next frame.
func (r *imageRenderer) begin(dst *ebiten.Image) {
	r.dst = dst
	r.offX, r.offY = 0, 0
	if r.text == nil {
		r.text = ebiten.NewImage(int(r.cfg.Canvas.Width), glyphH)
	}
}

func (r *imageRenderer) fillRect(rect core.Rect, c color.Color) {
	vector.DrawFilledRect(r.dst, float32(rect.X)+r.offX, float32(rect.Y)+r.offY, float32(rect.W), float32(rect.H), c, false)
}

func (r *imageRenderer) circle(x, y, radius float64, c color.Color) {
	vector.DrawFilledCircle(r.dst, float32(x)+r.offX, float32(y)+r.offY, float32(radius), c, true)
}

func (r *imageRenderer) line(a, b core.Vec, width float64, c color.Color) {
	vector.StrokeLine(r.dst, float32(a.X)+r.offX, float32(a.Y)+r.offY, float32(b.X)+r.offX, float32(b.Y)+r.offY, float32(width), c, true)
}

// sprite stretches img over rect.
func (r *imageRenderer) sprite(img *ebiten.Image, rect core.Rect) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
	op.GeoM.Translate(rect.X+float64(r.offX), rect.Y+float64(r.offY))
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(img, op)
}

func (r *imageRenderer) Offset(dx, dy float64) {
	r.offX, r.offY = float32(dx), float32(dy)
}

func (r *imageRenderer) Background(distance, scroll float64) {
	bg, grid := RGBA(core.ColorLightGray), gridLight
	if game.DarkPhase(distance) {
		bg, grid = RGBA(core.ColorDarkGray), gridDark
	}
	w, h := r.cfg.Canvas.Width, r.cfg.Canvas.Height
	r.dst.Fill(bg)

	for x := 0.0; x < w; x += gridLineStep {
		r.line(core.Vec{X: x, Y: 0}, core.Vec{X: x, Y: h}, 1, grid)
	}
	for y := 0.0; y < h; y += gridLineStep {
		r.line(core.Vec{X: 0, Y: y}, core.Vec{X: w, Y: y}, 1, grid)
	}
	shift := math.Mod(scroll, gridDotStep)
	for x := 0.0; x < w; x += gridDotStep {
		for y := 0.0; y < h; y += gridDotStep {
			r.circle(x, y+shift, 2, grid)
		}
	}
}

func (r *imageRenderer) Player(p *game.Player) {
	if r.sprites.Player != nil {
		r.sprite(r.sprites.Player, p.Rect())
		return
	}
	r.fillRect(p.Rect(), RGBA(p.FallbackColor()))
}

func (r *imageRenderer) Bullet(b *game.Bullet) {
	trail := RGBA(core.ColorCyan)
	for _, t := range b.Trail {
		r.circle(t.X, t.Y, 2, withAlpha(trail, b.TrailAlpha(t)))
	}
	r.circle(b.X, b.Y, b.Radius, RGBA(core.ColorBrightBlue))
	r.circle(b.X, b.Y, b.Radius-2, RGBA(core.ColorWhite))
}

func (r *imageRenderer) Obstacle(o *game.Obstacle) {
	if r.sprites.Enemy != nil {
		r.sprite(r.sprites.Enemy, o.Rect())
		return
	}
	r.fillRect(o.Rect(), RGBA(o.FallbackColor()))
}

func (r *imageRenderer) Laser(l *game.Laser) {
	red := RGBA(core.ColorBrightRed)
	glow := l.Glow()
	for _, a := range l.Anchors {
		r.fillRect(a.Expand(10), withAlpha(red, 100*glow/255))
		r.fillRect(a, red)
	}
	for w := 8; w > 3; w-- {
		r.line(l.A, l.B, float64(w), withAlpha(red, 100*glow*float64(w)/8/255))
	}
	r.line(l.A, l.B, 4, red)
}

func (r *imageRenderer) Coin(c *game.Coin) {
	r.circle(c.X, c.Y, c.Radius, RGBA(core.ColorBrightYellow))
}

func (r *imageRenderer) PowerUp(p *game.PowerUp) {
	c := RGBA(p.Kind.Color())
	rect := p.Rect()
	r.fillRect(rect.Expand(15), withAlpha(c, 100*p.Glow()/255))
	r.fillRect(rect, c)

	white := RGBA(core.ColorWhite)
	center := rect.Center()
	switch p.Kind {
	case game.PowerInvincibility:
		top := core.Vec{X: center.X, Y: rect.Y + 8}
		right := core.Vec{X: rect.Right() - 8, Y: center.Y}
		bottom := core.Vec{X: center.X, Y: rect.Bottom() - 8}
		left := core.Vec{X: rect.X + 8, Y: center.Y}
		r.line(top, right, 3, white)
		r.line(right, bottom, 3, white)
		r.line(bottom, left, 3, white)
		r.line(left, top, 3, white)
	case game.PowerMagnet:
		vector.StrokeRect(r.dst, float32(center.X-6)+r.offX, float32(center.Y-9)+r.offY, 12, 18, 3, white, false)
		for i := range 3 {
			y := center.Y + 9 + float64(i*6)
			r.line(core.Vec{X: center.X - 12, Y: y}, core.Vec{X: center.X + 12, Y: y}, 3, white)
		}
	case game.PowerBullet:
		r.fillRect(core.NewRect(center.X-4, center.Y-10, 8, 20), white)
		r.circle(center.X, center.Y-10, 4, white)
	}
}

func (r *imageRenderer) Explosion(e *game.Explosion) {
	for _, p := range e.Particles {
		if p.Life <= 0 {
			continue
		}
		r.circle(p.X, p.Y, 3, withAlpha(RGBA(p.Color), float64(p.Life)/float64(max(1, e.Lifetime))))
	}
}

// Text scales the debug font so its glyph height matches size.
func (r *imageRenderer) Text(text string, x, y, size float64, c core.Color) {
	r.text.Clear()
	ebitenutil.DebugPrint(r.text, text)

	s := size / glyphH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(RGBA(c))
	r.dst.DrawImage(r.text, op)
}

// textWidth is the width of text drawn by Text at size.
func textWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * glyphW * size / glyphH
}

func (r *imageRenderer) Panel(title string, lines ...string) {
	w, h := r.cfg.Canvas.Width, r.cfg.Canvas.Height
	vector.DrawFilledRect(r.dst, 0, 0, float32(w), float32(h), color.RGBA{A: 160}, false)

	const titleSize, lineSize, gap = 48.0, 24.0, 12.0
	boxW := textWidth(title, titleSize)
	for _, l := range lines {
		boxW = max(boxW, textWidth(l, lineSize))
	}
	boxW += 80
	boxH := titleSize + gap*2 + float64(len(lines))*(lineSize+gap) + 40
	boxX, boxY := (w-boxW)/2, (h-boxH)/2

	vector.DrawFilledRect(r.dst, float32(boxX), float32(boxY), float32(boxW), float32(boxH), color.RGBA{R: 20, G: 20, B: 30, A: 230}, false)
	vector.StrokeRect(r.dst, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 3, RGBA(core.ColorBrightCyan), false)

	y := boxY + 20
	r.Text(title, (w-textWidth(title, titleSize))/2, y, titleSize, core.ColorBrightYellow)
	y += titleSize + gap*2
	for _, l := range lines {
		r.Text(l, (w-textWidth(l, lineSize))/2, y, lineSize, core.ColorWhite)
		y += lineSize + gap
	}
}
