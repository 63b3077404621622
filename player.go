package main

const (
	PlayerRadius    = 10.0
	TrailMaxPoints  = 40   // bounded position history for the client trail
	TrailMinDistSq  = 16.0 // skip trail points closer than 4px to the last one
	SpawnOrbitAngle = 0.0
)

// TrailPoint is one sample of the player's recent path
type TrailPoint struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Player is the single controllable entity of a session.
// Created once per session and mutated every frame by the simulation.
type Player struct {
	ID     string
	Name   string
	X, Y   float64
	VX, VY float64
	Radius float64

	// Planet the player is orbiting, -1 while in space
	OnPlanet   int
	OrbitAngle float64

	// Dash state
	IsDashing    bool
	DashTimer    float64
	DashCooldown float64

	// Power-derived modifiers, reset when the granting power expires
	MagnetRange float64
	ExtraJumps  int
	HasShield   bool

	Trail []TrailPoint

	// Account link for persistence, 0 for guests without an account row
	AuthPlayerID int64
}

// NewPlayer creates a player orbiting the given starting planet
func NewPlayer(id, name string, start *Planet) *Player {
	p := &Player{
		ID:       id,
		Name:     name,
		Radius:   PlayerRadius,
		OnPlanet: -1,
	}
	if start != nil {
		p.OnPlanet = 0
		p.OrbitAngle = SpawnOrbitAngle
		r := start.Radius + p.Radius + LandingOffset
		p.X = start.X + r
		p.Y = start.Y
	}
	return p
}

// RecordTrail appends the current position to the bounded trail history
func (p *Player) RecordTrail() {
	if n := len(p.Trail); n > 0 {
		last := p.Trail[n-1]
		if DistanceSq(last.X, last.Y, p.X, p.Y) < TrailMinDistSq {
			return
		}
	}
	p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y})
	if len(p.Trail) > TrailMaxPoints {
		p.Trail = p.Trail[len(p.Trail)-TrailMaxPoints:]
	}
}
