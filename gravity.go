package main

import "math"

const (
	LandingOffset  = 5.0    // gap between planet surface and orbiting player
	GravityConst   = 900.0  // pull = GravityConst * planet.Mass() / d^2
	GravityMinDist = 25.0   // clamp to avoid singular pull near a center
	SpaceDrag      = 0.995  // velocity multiplier per update, skipped while dashing
	MaxWorldRadius = 4000.0 // distance from origin before the boundary clamp
	BoundaryDampen = 0.5    // kept fraction of the reflected radial velocity

	MinPullPower = 100.0
	MaxPullPower = 900.0

	DashSpeed        = 900.0
	DashDuration     = 0.25
	DashCooldownTime = 1.5

	SpeedBoostMul = 1.5 // jump velocity multiplier while "speed" power is active
)

// UpdateOnPlanet advances the player along its planet's landing perimeter.
// For any dt >= 0 the player stays at exactly
// planet.Radius + player.Radius + LandingOffset from the planet center.
func UpdateOnPlanet(p *Player, pl *Planet, dt float64) {
	if p == nil || pl == nil {
		return
	}
	p.OrbitAngle += pl.OrbitSpin() * dt
	r := pl.Radius + p.Radius + LandingOffset
	p.X = pl.X + math.Cos(p.OrbitAngle)*r
	p.Y = pl.Y + math.Sin(p.OrbitAngle)*r
	p.VX = 0
	p.VY = 0
}

// UpdateInSpace integrates free-flight motion: inverse-square pull from every
// planet, explicit Euler velocity step, drag unless dashing, position step,
// then the world boundary clamp. An empty planet list means zero net force.
func UpdateInSpace(p *Player, planets []*Planet, dt float64) {
	if p == nil {
		return
	}
	var ax, ay float64
	for _, pl := range planets {
		dx := pl.X - p.X
		dy := pl.Y - p.Y
		d2 := dx*dx + dy*dy
		if d2 < GravityMinDist*GravityMinDist {
			d2 = GravityMinDist * GravityMinDist
		}
		d := math.Sqrt(d2)
		pull := GravityConst * pl.Mass() / d2
		ax += dx / d * pull
		ay += dy / d * pull
	}

	p.VX += ax * dt
	p.VY += ay * dt
	if !p.IsDashing {
		p.VX *= SpaceDrag
		p.VY *= SpaceDrag
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt

	clampToWorld(p)
}

// clampToWorld keeps the player inside MaxWorldRadius of the origin and
// reflects the outward velocity component, dampened, so drift is bounded.
func clampToWorld(p *Player) {
	d2 := p.X*p.X + p.Y*p.Y
	if d2 <= MaxWorldRadius*MaxWorldRadius {
		return
	}
	d := math.Sqrt(d2)
	nx := p.X / d
	ny := p.Y / d
	p.X = nx * MaxWorldRadius
	p.Y = ny * MaxWorldRadius

	radial := p.VX*nx + p.VY*ny
	if radial > 0 {
		p.VX -= (1 + BoundaryDampen) * radial * nx
		p.VY -= (1 + BoundaryDampen) * radial * ny
	}
}

// Jump launches the player from its planet with the charged pull gesture.
// While the multijump power is active a jump is also valid mid-air, consuming
// one extra-jump charge. Returns false with no mutation otherwise.
func Jump(p *Player, effects *RingEffectState, pullPower, pullAngle float64) bool {
	if p == nil {
		return false
	}
	airJump := false
	if p.OnPlanet < 0 {
		if effects == nil || !effects.IsActive(PowerMultiJump) || p.ExtraJumps <= 0 {
			return false
		}
		airJump = true
	}

	power := Clamp(pullPower, MinPullPower, MaxPullPower)
	if effects != nil && effects.IsActive(PowerSpeed) {
		power *= SpeedBoostMul
	}
	p.VX = math.Cos(pullAngle) * power
	p.VY = math.Sin(pullAngle) * power
	p.OnPlanet = -1
	if airJump {
		p.ExtraJumps--
	}
	return true
}

// Dash gives a burst of speed toward a target point. Valid only while in
// space, off cooldown, and with the multijump power active. Returns false
// with no mutation on any precondition failure.
func Dash(p *Player, effects *RingEffectState, targetX, targetY float64) bool {
	if p == nil || p.OnPlanet >= 0 || p.DashCooldown > 0 {
		return false
	}
	if effects == nil || !effects.IsActive(PowerMultiJump) {
		return false
	}
	dx := targetX - p.X
	dy := targetY - p.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d == 0 {
		return false
	}
	p.IsDashing = true
	p.DashTimer = DashDuration
	p.DashCooldown = DashCooldownTime
	p.VX = dx / d * DashSpeed
	p.VY = dy / d * DashSpeed
	return true
}

// TickDashTimers decrements the dash timers, clamped at zero.
// IsDashing clears when the dash timer runs out.
func TickDashTimers(p *Player, dt float64) {
	if p == nil {
		return
	}
	if p.DashTimer > 0 {
		p.DashTimer -= dt
		if p.DashTimer <= 0 {
			p.DashTimer = 0
			p.IsDashing = false
		}
	}
	if p.DashCooldown > 0 {
		p.DashCooldown -= dt
		if p.DashCooldown < 0 {
			p.DashCooldown = 0
		}
	}
}
