package main

import "math"

// PlanetType controls landing behavior
type PlanetType int

const (
	PlanetStandard PlanetType = 0
	PlanetQuantum  PlanetType = 1 // landing teleports to a random other planet
	PlanetDense    PlanetType = 2 // heavier pull for its size
	PlanetIce      PlanetType = 3 // spins the orbiting player faster
)

const (
	PlanetMinRadius   = 30.0
	PlanetMaxRadius   = 80.0
	PlanetMinSpin     = 0.3 // radians/s
	PlanetMaxSpin     = 1.2
	IceSpinMul        = 2.0
	DenseMassMul      = 2.5
	QuantumChance     = 0.10
	DenseChance       = 0.12
	IceChance         = 0.15
	PlanetBandSpacing = 550.0 // distance between spawn bands
	PlanetBandJitter  = 180.0
	PlanetsPerBand    = 4
	PlanetMinGap      = 40.0 // min surface-to-surface gap between planets
)

// Planet is a gravity source the player can land on.
// Planets are appended over time and never removed.
type Planet struct {
	ID      int
	X, Y    float64
	Radius  float64
	Spin    float64 // angular velocity applied to orbiting players
	Type    PlanetType
	BandIdx int // spawn band, used to decide when to extend the world
}

// Mass returns the gravitational mass term used for inverse-square pull
func (pl *Planet) Mass() float64 {
	m := pl.Radius * pl.Radius
	if pl.Type == PlanetDense {
		m *= DenseMassMul
	}
	return m
}

// OrbitSpin returns the angular velocity applied to an orbiting player
func (pl *Planet) OrbitSpin() float64 {
	if pl.Type == PlanetIce {
		return pl.Spin * IceSpinMul
	}
	return pl.Spin
}

func rollPlanetType() PlanetType {
	r := randFloat()
	switch {
	case r < QuantumChance:
		return PlanetQuantum
	case r < QuantumChance+DenseChance:
		return PlanetDense
	case r < QuantumChance+DenseChance+IceChance:
		return PlanetIce
	default:
		return PlanetStandard
	}
}

// GenerateStartPlanet returns the planet the player spawns on
func GenerateStartPlanet() *Planet {
	return &Planet{
		ID:     0,
		X:      0,
		Y:      0,
		Radius: 50,
		Spin:   0.6,
		Type:   PlanetStandard,
	}
}

// GenerateBand appends a band of planets around the origin at the given
// band index. IDs continue from the current list length.
func GenerateBand(planets []*Planet, band int) []*Planet {
	dist := float64(band) * PlanetBandSpacing
	for i := 0; i < PlanetsPerBand; i++ {
		angle := (float64(i)+randFloat())/float64(PlanetsPerBand)*2*math.Pi + float64(band)*0.7
		d := dist + (randFloat()*2-1)*PlanetBandJitter
		radius := PlanetMinRadius + randFloat()*(PlanetMaxRadius-PlanetMinRadius)
		x := math.Cos(angle) * d
		y := math.Sin(angle) * d
		if d > MaxWorldRadius-radius {
			continue
		}
		if overlapsExisting(planets, x, y, radius) {
			continue
		}
		spin := PlanetMinSpin + randFloat()*(PlanetMaxSpin-PlanetMinSpin)
		if randFloat() < 0.5 {
			spin = -spin
		}
		planets = append(planets, &Planet{
			ID:      len(planets),
			X:       x,
			Y:       y,
			Radius:  radius,
			Spin:    spin,
			Type:    rollPlanetType(),
			BandIdx: band,
		})
	}
	return planets
}

func overlapsExisting(planets []*Planet, x, y, radius float64) bool {
	for _, pl := range planets {
		min := pl.Radius + radius + PlanetMinGap
		if DistanceSq(pl.X, pl.Y, x, y) < min*min {
			return true
		}
	}
	return false
}
