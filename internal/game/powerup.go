package game

import (
	"math"
	"time"

	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// PowerKind identifies a power-up effect.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerInvincibility
	PowerMagnet
	PowerBullet
	powerKindCount // Sentinel for random selection
)

// String returns the name of the power-up.
func (k PowerKind) String() string {
	switch k {
	case PowerInvincibility:
		return "Invincibility"
	case PowerMagnet:
		return "Magnet"
	case PowerBullet:
		return "Bullet"
	default:
		return "None"
	}
}

// Glyph returns the display character for a power-up.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerInvincibility:
		return '◆'
	case PowerMagnet:
		return 'U'
	case PowerBullet:
		return '!'
	default:
		return '?'
	}
}

// Color returns the pickup color.
func (k PowerKind) Color() core.Color {
	switch k {
	case PowerInvincibility:
		return core.ColorBrightGreen
	case PowerMagnet:
		return core.ColorOrange
	case PowerBullet:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

func (k PowerKind) activatedText() string {
	switch k {
	case PowerInvincibility:
		return "Invincibility Activated!"
	case PowerMagnet:
		return "Magnet Power Activated!"
	case PowerBullet:
		return "Bullet Power Activated!"
	}
	return ""
}

func (k PowerKind) expiredText() string {
	switch k {
	case PowerInvincibility:
		return "Invincibility Expired!"
	case PowerMagnet:
		return "Magnet Power Expired!"
	case PowerBullet:
		return "Bullet Power Expired!"
	}
	return ""
}

// randomPowerKind picks one of the three effects uniformly.
func randomPowerKind(rng Rand) PowerKind {
	return PowerKind(1 + rng.Intn(int(powerKindCount)-1))
}

// ActivePower is the single power-up currently affecting the player.
// The zero value means no power is active.
type ActivePower struct {
	Kind  PowerKind
	Start time.Time
}

// Active reports whether any power is in effect.
func (a ActivePower) Active() bool {
	return a.Kind != PowerNone
}

// PowerUp is a floating pickup.
type PowerUp struct {
	X, Y     float64
	W, H     float64
	Kind     PowerKind
	Pulse    float64 // Visual phase only
	Rotation float64 // Degrees, visual only

	pulseStep float64
	spinStep  float64
}

// NewPowerUp creates a pickup with its top-left corner at (x, y).
func NewPowerUp(x, y float64, kind PowerKind, cfg config.PowerUpConfig) *PowerUp {
	return &PowerUp{
		X:         x,
		Y:         y,
		W:         cfg.Size,
		H:         cfg.Size,
		Kind:      kind,
		pulseStep: cfg.PulseStep,
		spinStep:  cfg.SpinStep,
	}
}

// Update scrolls the pickup and advances its animation.
func (p *PowerUp) Update(scrollSpeed float64) {
	p.Y += scrollSpeed
	p.Pulse += p.pulseStep
	p.Rotation = math.Mod(p.Rotation+p.spinStep, 360)
}

// Rect returns the full pickup rectangle.
func (p *PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Hitbox is the full rectangle for pickups.
func (p *PowerUp) Hitbox() core.Rect {
	return p.Rect()
}

// Glow returns the pulse intensity in [0.7, 1.0].
func (p *PowerUp) Glow() float64 {
	return math.Abs(math.Sin(p.Pulse))*0.3 + 0.7
}
