package game

import (
	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// TrailPoint is one fading sample behind a bullet.
type TrailPoint struct {
	X, Y float64
	Life int
}

// Bullet travels straight up until it leaves the canvas or hits a drone.
type Bullet struct {
	X, Y   float64 // Center
	Speed  float64
	Radius float64
	Trail  []TrailPoint
	Active bool

	cfg config.BulletConfig
}

// NewBullet creates a bullet centred at (x, y).
func NewBullet(x, y float64, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Speed:  cfg.Speed,
		Radius: cfg.Radius,
		Active: true,
		cfg:    cfg,
	}
}

// Update moves the bullet, occasionally drops a jittered trail sample and
// ages the existing ones.
func (b *Bullet) Update(rng Rand) {
	b.Y -= b.Speed

	if rng.Float64() < b.cfg.TrailChance {
		j := b.cfg.TrailJitter
		b.Trail = append(b.Trail, TrailPoint{
			X:    b.X + rng.Float64()*2*j - j,
			Y:    b.Y + rng.Float64()*2*j - j,
			Life: b.cfg.TrailLife,
		})
	}

	alive := b.Trail[:0]
	for _, p := range b.Trail {
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	b.Trail = alive

	if b.Y < -b.Radius {
		b.Active = false
	}
}

// Rect returns the bullet's bounding square.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// TrailAlpha returns the opacity of a trail sample in [0, 1].
func (b *Bullet) TrailAlpha(p TrailPoint) float64 {
	if b.cfg.TrailLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(b.cfg.TrailLife)
}
