package game

import (
	"math"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Laser is a beam stretched between two anchor boxes.
type Laser struct {
	A, B    core.Vec // Beam endpoints
	Anchors [2]core.Rect
	Pulse   float64 // Visual phase only

	cfg config.LaserConfig
}

// NewLaser creates a beam from a to b. The beam length is capped at
// MaxLengthRatio of the canvas width by pulling b towards a.
func NewLaser(a, b core.Vec, canvasW float64, cfg config.LaserConfig) *Laser {
	maxLen := canvasW * cfg.MaxLengthRatio
	dx, dy := b.X-a.X, b.Y-a.Y
	if l := math.Hypot(dx, dy); l > maxLen {
		s := maxLen / l
		b = core.Vec{X: a.X + dx*s, Y: a.Y + dy*s}
	}

	half := cfg.AnchorSize / 2
	return &Laser{
		A: a,
		B: b,
		Anchors: [2]core.Rect{
			core.NewRect(a.X-half, a.Y-half, cfg.AnchorSize, cfg.AnchorSize),
			core.NewRect(b.X-half, b.Y-half, cfg.AnchorSize, cfg.AnchorSize),
		},
		cfg: cfg,
	}
}

// Length returns the beam length.
func (l *Laser) Length() float64 {
	return math.Hypot(l.B.X-l.A.X, l.B.Y-l.A.Y)
}

// Update scrolls both endpoints and anchors together.
func (l *Laser) Update(scrollSpeed float64) {
	l.A.Y += scrollSpeed
	l.B.Y += scrollSpeed
	l.Anchors[0].Y += scrollSpeed
	l.Anchors[1].Y += scrollSpeed
	l.Pulse += l.cfg.PulseStep
}

// Hitbox returns the beam's bounding box padded on every side. It is the
// cheap pre-filter for Collides and the footprint used by the spawn planner.
func (l *Laser) Hitbox() core.Rect {
	x := math.Min(l.A.X, l.B.X)
	y := math.Min(l.A.Y, l.B.Y)
	w := math.Abs(l.B.X - l.A.X)
	h := math.Abs(l.B.Y - l.A.Y)
	return core.NewRect(x, y, w, h).Expand(l.cfg.Padding)
}

// Collides reports whether any corner or the center of r lies within the
// hit distance of the beam.
func (l *Laser) Collides(r core.Rect) bool {
	if !core.Overlaps(l.Hitbox(), r) {
		return false
	}
	for _, p := range r.Corners() {
		if core.SegmentPointDistance(p, l.A, l.B) < l.cfg.HitDistance {
			return true
		}
	}
	return false
}

// Glow returns the pulse intensity in [0.7, 1.0].
func (l *Laser) Glow() float64 {
	return math.Abs(math.Sin(l.Pulse))*0.3 + 0.7
}

// Top returns the smallest y covered by the beam or its anchors.
func (l *Laser) Top() float64 {
	return math.Min(l.Anchors[0].Y, l.Anchors[1].Y)
}
