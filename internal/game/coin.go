package game

import (
	"github.com/vovakirdan/roborun/internal/config"
	"github.com/vovakirdan/roborun/internal/core"
)

// Coin is a one-shot collectible.
type Coin struct {
	X, Y      float64 // Center
	Radius    float64
	Collected bool
}

// NewCoin creates a coin centred at (x, y).
func NewCoin(x, y float64, cfg config.CoinConfig) *Coin {
	return &Coin{X: x, Y: y, Radius: cfg.Radius}
}

// Update scrolls the coin down.
func (c *Coin) Update(scrollSpeed float64) {
	c.Y += scrollSpeed
}

// Rect returns the coin's bounding square.
func (c *Coin) Rect() core.Rect {
	return core.NewRect(c.X-c.Radius, c.Y-c.Radius, c.Radius*2, c.Radius*2)
}

// Hitbox is the bounding square.
func (c *Coin) Hitbox() core.Rect {
	return c.Rect()
}

// pullTowards moves the coin a fixed step towards target on each axis.
func (c *Coin) pullTowards(target core.Vec, step float64) {
	c.X += core.Sign(target.X-c.X) * step
	c.Y += core.Sign(target.Y-c.Y) * step
}
