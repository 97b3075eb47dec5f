package game

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/roborun/internal/core"
)

// framesPerSecond converts scroll speed (units per frame) into distance.
const framesPerSecond = 60

// Step advances the round by one frame and reports whether the round ended.
// The stage order matters: spawning sees positions before this frame's
// scroll, and the fatal collision check runs last against the moved world.
func (r *Round) Step(in core.InputFrame, now time.Time) bool {
	if r.Over {
		return true
	}
	r.Tick++
	p := r.Player

	if in.Has(core.ActionShoot) {
		if b := p.Shoot(now); b != nil {
			r.Bullets = append(r.Bullets, b)
		}
	}

	elapsed := now.Sub(r.StartedAt).Seconds()
	speed := r.difficulty.Speed(r.cfg.Physics.BaseSpeed, elapsed, r.SpeedMultiplier)
	r.ScrollSpeed = speed
	p.Speed = speed
	r.BgScroll = math.Mod(r.BgScroll+speed/2, r.cfg.Canvas.Height)

	p.Move(in)

	r.spawnTimer++
	r.laserTimer++
	r.coinTimer++

	r.checkCheckpoint()
	r.expirePowerUp(now)

	if r.spawnTimer >= r.cfg.Spawn.ObstacleEvery {
		r.spawnTimer = 0
		r.spawnObstacle()
		if r.rng.Float64() < r.cfg.PowerUp.SpawnChance {
			r.spawnPowerUp()
		}
	}
	if r.laserTimer >= r.cfg.Spawn.LaserEvery {
		r.laserTimer = 0
		r.spawnLaser()
	}
	if r.coinTimer >= r.cfg.Spawn.CoinEvery {
		r.coinTimer = 0
		r.spawnCoins()
	}

	r.updateBullets()
	r.updateWorld(now)
	r.pruneOffscreen()

	p.Distance += speed / framesPerSecond

	if p.HitTimer > 0 {
		p.HitTimer--
	}
	if r.AnnouncementTimer > 0 {
		r.AnnouncementTimer--
	}

	if r.fatalCollision() {
		r.end()
	}
	return r.Over
}

// checkCheckpoint raises the level each time the distance crosses a new
// multiple of the checkpoint distance.
func (r *Round) checkCheckpoint() {
	every := r.cfg.Progress.CheckpointDistance
	if every <= 0 {
		return
	}
	reached := int(math.Floor(r.Player.Distance)) / every * every
	if reached <= r.lastCheckpoint {
		return
	}
	r.lastCheckpoint = reached
	r.Difficulty++
	r.spawnPowerUp()
	r.announce(fmt.Sprintf("Checkpoint Reached! Level: %d", r.Difficulty))
	r.logger.Debug("checkpoint reached", "round", r.ID, "distance", reached, "level", r.Difficulty)
}

func (r *Round) expirePowerUp(now time.Time) {
	kind := r.Player.Power.Kind
	msg, expired := r.Player.UpdatePowerUp(now)
	if !expired {
		return
	}
	if kind == PowerInvincibility {
		r.SpeedMultiplier = 1.0
	}
	r.announce(msg)
	r.logger.Debug("power-up expired", "round", r.ID, "power", kind)
}

// spawnObstacle places one drone, then takes it back out if it would leave
// no lane open.
func (r *Round) spawnObstacle() {
	oc := r.cfg.Obstacle
	pos, ok := r.planner.FindSafePosition(r.rng, oc.Width, oc.Height, r.bodies(), r.cfg.Spawn.MaxAttempts)
	if !ok {
		return
	}
	r.Obstacles = append(r.Obstacles, NewObstacle(pos.X, pos.Y, oc))
	if !r.planner.LaneIsClear(r.hazards()) {
		r.Obstacles = r.Obstacles[:len(r.Obstacles)-1]
	}
}

func (r *Round) spawnPowerUp() {
	size := r.cfg.PowerUp.Size
	kind := randomPowerKind(r.rng)
	pos, ok := r.planner.FindSafePosition(r.rng, size, size, r.bodies(), r.cfg.Spawn.MaxAttempts)
	if !ok {
		return
	}
	r.PowerUps = append(r.PowerUps, NewPowerUp(pos.X, pos.Y, kind, r.cfg.PowerUp))
}

// spawnLaser tries a few random beams hanging above the screen and keeps
// the first one that is clear of everything and leaves a lane open.
func (r *Round) spawnLaser() {
	lc := r.cfg.Laser
	w, h := r.cfg.Canvas.Width, r.cfg.Canvas.Height
	span := max(0, int(w-2*lc.EdgeMargin))

	for i := 0; i < lc.Attempts; i++ {
		a := core.Vec{X: lc.EdgeMargin + float64(r.rng.Intn(span+1)), Y: lc.StartY}
		b := core.Vec{X: lc.EdgeMargin + float64(r.rng.Intn(span+1))}
		b.Y = a.Y - float64(r.rng.Intn(int(h/2)+1))

		l := NewLaser(a, b, w, lc)
		if r.planner.Blocked(l.Hitbox(), r.bodies()) {
			continue
		}
		if !r.planner.LaneIsClear(r.hazards(l)) {
			continue
		}
		r.Lasers = append(r.Lasers, l)
		return
	}
}

func (r *Round) spawnCoins() {
	margin := r.cfg.Coin.EdgeMargin
	span := max(0, int(r.cfg.Canvas.Width-2*margin))
	baseX := margin + float64(r.rng.Intn(span+1))
	r.Coins = append(r.Coins, r.planner.SpawnCoinLine(r.rng, baseX, r.bodies())...)
}

// updateBullets moves bullets and trades each hit bullet for one drone.
func (r *Round) updateBullets() {
	live := r.Bullets[:0]
	for _, b := range r.Bullets {
		b.Update(r.rng)
		for j, o := range r.Obstacles {
			if core.Overlaps(b.Rect(), o.Hitbox()) {
				r.Explosions = append(r.Explosions, NewExplosion(o.Rect().Center(), r.rng))
				r.Obstacles = append(r.Obstacles[:j], r.Obstacles[j+1:]...)
				b.Active = false
				break
			}
		}
		if b.Active {
			live = append(live, b)
		}
	}
	r.Bullets = live

	explosions := r.Explosions[:0]
	for _, e := range r.Explosions {
		e.Update()
		if !e.Done() {
			explosions = append(explosions, e)
		}
	}
	r.Explosions = explosions
}

// updateWorld scrolls hazards and collectibles and resolves pickups.
func (r *Round) updateWorld(now time.Time) {
	p := r.Player
	speed := r.ScrollSpeed
	hb := p.Hitbox()
	center := p.Center()

	for _, l := range r.Lasers {
		l.Update(speed)
	}
	for _, o := range r.Obstacles {
		o.Update(speed)
	}

	for _, c := range r.Coins {
		c.Update(speed)
		if !c.Collected && core.Overlaps(c.Rect(), hb) {
			c.Collected = true
			p.Coins++
		}
		if p.Magnet() && !c.Collected && math.Abs(c.X-center.X) < r.cfg.Coin.MagnetRange {
			c.pullTowards(center, r.cfg.Coin.MagnetPull)
		}
	}

	kept := r.PowerUps[:0]
	for _, pu := range r.PowerUps {
		pu.Update(speed)
		if core.Overlaps(pu.Rect(), hb) {
			r.collectPowerUp(pu.Kind, now)
			continue
		}
		kept = append(kept, pu)
	}
	r.PowerUps = kept
}

// collectPowerUp activates kind, replacing any running power.
func (r *Round) collectPowerUp(kind PowerKind, now time.Time) {
	wasInvincible := r.Player.Invincible()
	r.Player.Activate(kind, now)

	switch {
	case kind == PowerInvincibility:
		r.SpeedMultiplier = r.cfg.Physics.InvincibleMultiplier
	case wasInvincible:
		r.SpeedMultiplier = 1.0
	}
	r.announce(kind.activatedText())
	r.logger.Debug("power-up activated", "round", r.ID, "power", kind)
}

// pruneOffscreen drops entities that have scrolled fully below the canvas
// and coins that were already collected.
func (r *Round) pruneOffscreen() {
	h := r.cfg.Canvas.Height

	obstacles := r.Obstacles[:0]
	for _, o := range r.Obstacles {
		if o.Y < h {
			obstacles = append(obstacles, o)
		}
	}
	r.Obstacles = obstacles

	lasers := r.Lasers[:0]
	for _, l := range r.Lasers {
		if l.Top() < h {
			lasers = append(lasers, l)
		}
	}
	r.Lasers = lasers

	coins := r.Coins[:0]
	for _, c := range r.Coins {
		if !c.Collected && c.Y-c.Radius < h {
			coins = append(coins, c)
		}
	}
	r.Coins = coins

	powerUps := r.PowerUps[:0]
	for _, pu := range r.PowerUps {
		if pu.Y < h {
			powerUps = append(powerUps, pu)
		}
	}
	r.PowerUps = powerUps
}

func (r *Round) fatalCollision() bool {
	p := r.Player
	if p.Invincible() {
		return false
	}
	hb := p.Hitbox()
	for _, o := range r.Obstacles {
		if core.Overlaps(o.Hitbox(), hb) {
			return true
		}
	}
	for _, l := range r.Lasers {
		if l.Collides(hb) {
			return true
		}
	}
	return false
}

func (r *Round) end() {
	r.Over = true
	r.Score = r.FinalScore()
	r.Player.HitTimer = r.cfg.Player.HitFlashFrames
	r.Shake = r.cfg.Progress.ShakeFrames
}
