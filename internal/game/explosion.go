package game

import (
	"math"

	"github.com/vovakirdan/roborun/internal/core"
)

const (
	explosionParticles = 20
	explosionLifetime  = 30
	explosionGravity   = 0.1
)

// Particle is one spark of an explosion.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   int
	Color  core.Color
}

// Explosion is a purely visual burst left behind by a destroyed drone.
type Explosion struct {
	Particles []Particle
	Lifetime  int
}

// NewExplosion bursts particles outwards from center.
func NewExplosion(center core.Vec, rng Rand) *Explosion {
	palette := [...]core.Color{core.ColorOrange, core.ColorBrightYellow, core.ColorYellow, core.ColorBrightRed}

	e := &Explosion{
		Particles: make([]Particle, explosionParticles),
		Lifetime:  explosionLifetime,
	}
	for i := range e.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := 2 + rng.Float64()*3
		e.Particles[i] = Particle{
			X:     center.X,
			Y:     center.Y,
			DX:    math.Cos(angle) * speed,
			DY:    math.Sin(angle) * speed,
			Life:  explosionLifetime,
			Color: palette[rng.Intn(len(palette))],
		}
	}
	return e
}

// Update moves every particle and applies gravity.
func (e *Explosion) Update() {
	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.DX
		p.Y += p.DY
		p.Life--
		p.DY += explosionGravity
	}
}

// Done reports whether the burst has faded out.
func (e *Explosion) Done() bool {
	return len(e.Particles) == 0 || e.Particles[0].Life <= 0
}
