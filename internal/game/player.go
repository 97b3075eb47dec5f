package game

import (
	"math"
	"time"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Player is the robot steered by the user.
type Player struct {
	X, Y     float64
	W, H     float64
	Speed    float64 // Pixels per held direction per frame
	Power    ActivePower
	Coins    int
	Distance float64
	HitTimer int // Flicker frames after a hit

	lastShot time.Time
	cfg      *config.RoboRunConfig
}

// NewPlayer places the player centred near the bottom of the canvas.
func NewPlayer(cfg *config.RoboRunConfig) *Player {
	w, h := cfg.Player.Width, cfg.Player.Height
	return &Player{
		X:     cfg.Canvas.Width/2 - w/2,
		Y:     cfg.Canvas.Height - cfg.Player.BottomOffset - h/2,
		W:     w,
		H:     h,
		Speed: cfg.Physics.BaseSpeed,
		cfg:   cfg,
	}
}

// Rect returns the full sprite rectangle, used for rendering only.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Hitbox returns the inset rectangle used for every collision test.
func (p *Player) Hitbox() core.Rect {
	shrink := math.Floor(p.W * p.cfg.Player.HitboxInset)
	return core.NewRect(p.X+shrink, p.Y+shrink, p.W-2*shrink, p.H-2*shrink)
}

// Center returns the sprite center.
func (p *Player) Center() core.Vec {
	return p.Rect().Center()
}

// Invincible reports whether obstacles and lasers are harmless.
func (p *Player) Invincible() bool { return p.Power.Kind == PowerInvincibility }

// Magnet reports whether nearby coins are pulled in.
func (p *Player) Magnet() bool { return p.Power.Kind == PowerMagnet }

// CanShoot reports whether the bullet power is active.
func (p *Player) CanShoot() bool { return p.Power.Kind == PowerBullet }

// Move applies one frame of movement for every held direction, each axis
// independently, and clamps the result to the canvas.
func (p *Player) Move(in core.InputFrame) {
	maxX := p.cfg.Canvas.Width - p.W
	maxY := p.cfg.Canvas.Height - p.H

	if in.Has(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += p.Speed
	}
	if in.Has(core.ActionUp) {
		p.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		p.Y += p.Speed
	}

	p.X = core.ClampF(p.X, 0, maxX)
	p.Y = core.ClampF(p.Y, 0, maxY)
}

// Activate replaces whatever power is active and restarts its timer.
func (p *Player) Activate(kind PowerKind, now time.Time) {
	p.Power = ActivePower{Kind: kind, Start: now}
}

// PowerRemaining returns how long the active power still lasts.
func (p *Player) PowerRemaining(now time.Time) time.Duration {
	if !p.Power.Active() {
		return 0
	}
	left := p.powerDuration() - now.Sub(p.Power.Start)
	if left < 0 {
		return 0
	}
	return left
}

// UpdatePowerUp clears the active power once its duration has been exceeded
// and returns the expiry message.
func (p *Player) UpdatePowerUp(now time.Time) (string, bool) {
	if !p.Power.Active() {
		return "", false
	}
	if now.Sub(p.Power.Start) <= p.powerDuration() {
		return "", false
	}
	msg := p.Power.Kind.expiredText()
	p.Power = ActivePower{}
	return msg, true
}

// Shoot fires a bullet from the top-center of the sprite when the bullet
// power is active and the cooldown has passed.
func (p *Player) Shoot(now time.Time) *Bullet {
	if !p.CanShoot() {
		return nil
	}
	cooldown := time.Duration(p.cfg.Player.ShootCooldownMs) * time.Millisecond
	if !p.lastShot.IsZero() && now.Sub(p.lastShot) < cooldown {
		return nil
	}
	p.lastShot = now
	return NewBullet(p.X+p.W/2, p.Y, p.cfg.Bullet)
}

// Visible implements the hit flicker: hidden on alternating pairs of frames.
func (p *Player) Visible() bool {
	return p.HitTimer <= 0 || (p.HitTimer/2)%2 != 0
}

// FallbackColor is used when no sprite image is available.
func (p *Player) FallbackColor() core.Color {
	if p.Invincible() {
		return core.ColorBrightGreen
	}
	return core.ColorBrightBlue
}

func (p *Player) powerDuration() time.Duration {
	return time.Duration(p.cfg.PowerUp.DurationMs) * time.Millisecond
}
