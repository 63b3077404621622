package main

import "math"

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 <= radSum*radSum
}

// IsPlayerInRing tests annulus containment: the player's center must be
// inside the outer circle and outside the inner circle. The inner test is
// what rejects the hole-of-the-donut false positive.
func IsPlayerInRing(p *Player, r *Ring) bool {
	d2 := DistanceSq(p.X, p.Y, r.X, r.Y)
	outer := r.OuterRadius + p.Radius
	if d2 > outer*outer {
		return false
	}
	inner := r.InnerRadius - p.Radius
	if inner > 0 && d2 < inner*inner {
		return false
	}
	return true
}

// landingDistance is how close the player center must be to a planet center
// to count as landed
func landingDistance(p *Player, pl *Planet) float64 {
	return pl.Radius + p.Radius + LandingOffset
}

// CheckPlanetCollisions returns the index of the planet the player should
// land on, or -1. Only players in space can land. Candidates come from the
// grid; when several qualify in the same frame the winner is the nearest by
// squared center distance, ties broken by lowest planet index, so the result
// does not depend on map iteration order.
func CheckPlanetCollisions(p *Player, planets []*Planet, grid *SpatialGrid) int {
	if p == nil || p.OnPlanet >= 0 {
		return -1
	}
	best := -1
	bestD2 := math.MaxFloat64
	for _, ref := range grid.Query(p.X, p.Y, p.Radius) {
		if ref.Kind != 'l' || ref.Idx >= len(planets) {
			continue
		}
		pl := planets[ref.Idx]
		land := landingDistance(p, pl)
		d2 := DistanceSq(p.X, p.Y, pl.X, pl.Y)
		if d2 > land*land {
			continue
		}
		if d2 < bestD2 || (d2 == bestD2 && ref.Idx < best) {
			bestD2 = d2
			best = ref.Idx
		}
	}
	return best
}

// HandlePlanetLanding puts the player into orbit around planets[idx]:
// velocity zeroed, orbit angle from atan2 of the approach vector. Landing on
// a quantum planet instead relocates the player onto a random other planet —
// that is the quantum gimmick, not an error path. Returns the index of the
// planet actually landed on, or -1 if idx is out of range.
func HandlePlanetLanding(p *Player, planets []*Planet, idx int) int {
	if p == nil || idx < 0 || idx >= len(planets) {
		return -1
	}
	pl := planets[idx]

	if pl.Type == PlanetQuantum && len(planets) > 1 {
		// Pick a pseudo-random destination other than the quantum planet
		dest := int(randFloat() * float64(len(planets)-1))
		if dest >= idx {
			dest++
		}
		target := planets[dest%len(planets)]
		// Arrive at a random point on the destination's perimeter
		angle := randFloat() * 2 * math.Pi
		r := landingDistance(p, target)
		p.X = target.X + math.Cos(angle)*r
		p.Y = target.Y + math.Sin(angle)*r
		idx = dest % len(planets)
		pl = target
	}

	p.OnPlanet = idx
	p.VX = 0
	p.VY = 0
	p.IsDashing = false
	p.DashTimer = 0
	p.OrbitAngle = math.Atan2(p.Y-pl.Y, p.X-pl.X)
	// Snap onto the landing perimeter immediately
	r := landingDistance(p, pl)
	p.X = pl.X + math.Cos(p.OrbitAngle)*r
	p.Y = pl.Y + math.Sin(p.OrbitAngle)*r
	return idx
}

// CheckRingCollisions returns the uncollected rings the player is inside of
// this frame, in candidate iteration order (grid cells scanned row-major,
// insertion order within a cell). Ghost rings only count while tangible.
// Marking them collected is the effect engine's job.
func CheckRingCollisions(p *Player, rings []*Ring, grid *SpatialGrid, now float64) []*Ring {
	if p == nil {
		return nil
	}
	var hit []*Ring
	seen := make(map[int]bool)
	for _, ref := range grid.Query(p.X, p.Y, p.Radius) {
		if ref.Kind != 'r' || ref.Idx >= len(rings) {
			continue
		}
		r := rings[ref.Idx]
		if r.Collected || seen[r.ID] {
			continue
		}
		if !r.GhostTangible(now) {
			continue
		}
		if IsPlayerInRing(p, r) {
			seen[r.ID] = true
			hit = append(hit, r)
		}
	}
	return hit
}
