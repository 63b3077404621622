package main

import (
	"math"
	"testing"
)

func TestCheckCollision(t *testing.T) {
	// Overlapping circles
	if !CheckCollision(0, 0, 10, 15, 0, 10) {
		t.Error("circles should collide (overlapping)")
	}

	// Touching circles
	if !CheckCollision(0, 0, 10, 20, 0, 10) {
		t.Error("circles should collide (touching)")
	}

	// Non-overlapping circles
	if CheckCollision(0, 0, 10, 25, 0, 10) {
		t.Error("circles should not collide")
	}
}

// Scenario A: player at the planet center lands and ends up on the
// landing perimeter with velocity zeroed.
func TestPlanetLandingScenario(t *testing.T) {
	planets := []*Planet{{ID: 0, X: 100, Y: 100, Radius: 50}}
	p := &Player{Radius: 10, OnPlanet: -1, X: 100, Y: 100, VX: 50, VY: -30}

	grid := NewSpatialGrid()
	grid.Rebuild(planets, nil)

	idx := CheckPlanetCollisions(p, planets, grid)
	if idx != 0 {
		t.Fatalf("CheckPlanetCollisions = %d, want 0", idx)
	}

	landed := HandlePlanetLanding(p, planets, idx)
	if landed != 0 {
		t.Fatalf("landed on %d, want 0", landed)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Error("landing should zero velocity")
	}
	d := Distance(p.X, p.Y, 100, 100)
	if math.Abs(d-65) > 1e-9 {
		t.Errorf("post-landing distance = %v, want 65", d)
	}
	if p.OnPlanet != 0 {
		t.Error("player should reference the landed planet")
	}
}

func TestPlanetCollisionSkippedWhileOrbiting(t *testing.T) {
	planets := []*Planet{{ID: 0, X: 0, Y: 0, Radius: 50}}
	p := &Player{Radius: 10, OnPlanet: 0, X: 0, Y: 0}

	grid := NewSpatialGrid()
	grid.Rebuild(planets, nil)

	if idx := CheckPlanetCollisions(p, planets, grid); idx != -1 {
		t.Errorf("orbiting player should not land again, got %d", idx)
	}
}

func TestPlanetCollisionNearestWins(t *testing.T) {
	// Both planets qualify; the nearer one must win regardless of order.
	planets := []*Planet{
		{ID: 0, X: 60, Y: 0, Radius: 50},
		{ID: 1, X: -40, Y: 0, Radius: 50},
	}
	p := &Player{Radius: 10, OnPlanet: -1, X: 0, Y: 0}

	grid := NewSpatialGrid()
	grid.Rebuild(planets, nil)

	if idx := CheckPlanetCollisions(p, planets, grid); idx != 1 {
		t.Errorf("nearest planet should win, got %d", idx)
	}
}

func TestQuantumPlanetTeleports(t *testing.T) {
	planets := []*Planet{
		{ID: 0, X: 0, Y: 0, Radius: 50, Type: PlanetQuantum},
		{ID: 1, X: 2000, Y: 2000, Radius: 40},
	}
	p := &Player{Radius: 10, OnPlanet: -1, X: 0, Y: 0}

	landed := HandlePlanetLanding(p, planets, 0)
	if landed != 1 {
		t.Fatalf("quantum landing should relocate to planet 1, got %d", landed)
	}
	want := planets[1].Radius + p.Radius + LandingOffset
	d := Distance(p.X, p.Y, 2000, 2000)
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("distance to destination = %v, want %v", d, want)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Error("velocity should be zeroed after the quantum hop")
	}
}

func TestQuantumPlanetAloneLandsNormally(t *testing.T) {
	planets := []*Planet{{ID: 0, X: 0, Y: 0, Radius: 50, Type: PlanetQuantum}}
	p := &Player{Radius: 10, OnPlanet: -1, X: 60, Y: 0}

	if landed := HandlePlanetLanding(p, planets, 0); landed != 0 {
		t.Errorf("lone quantum planet should land in place, got %d", landed)
	}
}

// Scenario B: annulus containment accepts the band, rejects the hole.
func TestIsPlayerInRing(t *testing.T) {
	ring := &Ring{X: 100, Y: 100, OuterRadius: 30, InnerRadius: 15}

	inBand := &Player{Radius: 10, X: 130, Y: 100}
	if !IsPlayerInRing(inBand, ring) {
		t.Error("player in the annulus band should register")
	}

	inHole := &Player{Radius: 5, X: 100, Y: 100}
	if IsPlayerInRing(inHole, ring) {
		t.Error("player inside the donut hole must not register")
	}

	outside := &Player{Radius: 10, X: 200, Y: 100}
	if IsPlayerInRing(outside, ring) {
		t.Error("player outside the outer circle must not register")
	}
}

func TestCheckRingCollisions(t *testing.T) {
	rings := []*Ring{
		newRing(0, 0, 0, RingStandard, 10),
		newRing(1, 500, 500, RingStandard, 10),
		newRing(2, 5, 0, RingStandard, 10),
	}
	rings[2].Collected = true
	p := &Player{Radius: 10, OnPlanet: -1, X: 20, Y: 0}

	grid := NewSpatialGrid()
	grid.Rebuild(nil, rings)

	hit := CheckRingCollisions(p, rings, grid, 0)
	if len(hit) != 1 {
		t.Fatalf("got %d hits, want 1", len(hit))
	}
	if hit[0].ID != 0 {
		t.Errorf("hit ring %d, want 0", hit[0].ID)
	}
}

func TestCheckRingCollisionsGhostPhase(t *testing.T) {
	ghost := newRing(0, 0, 0, RingGhost, GhostRingValue)
	rings := []*Ring{ghost}
	p := &Player{Radius: 10, OnPlanet: -1, X: 20, Y: 0}

	grid := NewSpatialGrid()
	grid.Rebuild(nil, rings)

	tangibleAt := GhostPhasePeriod * GhostVisibleFrac / 2
	hiddenAt := GhostPhasePeriod * (GhostVisibleFrac + 1) / 2

	if got := CheckRingCollisions(p, rings, grid, tangibleAt); len(got) != 1 {
		t.Error("ghost ring should be collectible while tangible")
	}
	if got := CheckRingCollisions(p, rings, grid, hiddenAt); len(got) != 0 {
		t.Error("ghost ring must not be collectible while phased out")
	}
}
