package game

import (
	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Obstacle is a hovering drone. Touching its hitbox ends the round.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// NewObstacle creates a drone with its top-left corner at (x, y).
func NewObstacle(x, y float64, cfg config.ObstacleConfig) *Obstacle {
	return &Obstacle{X: x, Y: y, W: cfg.Width, H: cfg.Height}
}

// Update scrolls the drone down.
func (o *Obstacle) Update(scrollSpeed float64) {
	o.Y += scrollSpeed
}

// Rect returns the full sprite rectangle.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Hitbox is the centred half-size rectangle.
func (o *Obstacle) Hitbox() core.Rect {
	return core.NewRect(o.X+o.W/4, o.Y+o.H/4, o.W/2, o.H/2)
}

// FallbackColor is used when no sprite image is available.
func (o *Obstacle) FallbackColor() core.Color {
	return core.ColorBrightMagenta
}
