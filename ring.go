package main

import "math"

// RingType is the tagged union replacing the stringly-typed ring.type field
type RingType int

const (
	RingStandard RingType = iota
	RingPowerShield
	RingPowerMagnet
	RingPowerSlowmo
	RingPowerMultiJump
	RingWarp
	RingChain
	RingGhost
)

const (
	RingOuterRadius = 30.0
	RingInnerRadius = 15.0

	StandardRingValue = 10
	PowerRingValue    = 25
	WarpRingValue     = 15
	ChainRingValue    = 20
	GhostRingValue    = 30
	ChainBonusPerRing = 25 // completion bonus = chain length * this

	GhostPhasePeriod = 2.4 // seconds for one visible+hidden cycle
	GhostVisibleFrac = 0.5

	WaveStandardCount = 8
	WaveChainLength   = 4
	WaveGhostChance   = 0.6
	WaveRingMinDist   = 120.0 // min distance from any planet surface
	WaveRingMaxDist   = 320.0
)

// Ring is a collectible annulus. Collected is monotonic: false -> true only.
type Ring struct {
	ID          int
	X, Y        float64
	OuterRadius float64
	InnerRadius float64
	Type        RingType
	Collected   bool
	PairID      int // warp rings: ID of the paired ring, else -1
	ChainNumber int // chain rings: 1-based position in the sequence, else 0
	Value       int
}

// GhostTangible reports whether a ghost ring can currently be collected.
// Non-ghost rings are always tangible.
func (r *Ring) GhostTangible(now float64) bool {
	if r.Type != RingGhost {
		return true
	}
	phase := math.Mod(now, GhostPhasePeriod) / GhostPhasePeriod
	return phase < GhostVisibleFrac
}

func newRing(id int, x, y float64, typ RingType, value int) *Ring {
	return &Ring{
		ID:          id,
		X:           x,
		Y:           y,
		OuterRadius: RingOuterRadius,
		InnerRadius: RingInnerRadius,
		Type:        typ,
		PairID:      -1,
		Value:       value,
	}
}

// ringSpot picks a position near a random planet but outside its landing zone
func ringSpot(planets []*Planet) (float64, float64) {
	if len(planets) == 0 {
		a := randFloat() * 2 * math.Pi
		d := randFloat() * 500
		return math.Cos(a) * d, math.Sin(a) * d
	}
	pl := planets[int(randFloat()*float64(len(planets)))%len(planets)]
	a := randFloat() * 2 * math.Pi
	d := pl.Radius + WaveRingMinDist + randFloat()*(WaveRingMaxDist-WaveRingMinDist)
	return pl.X + math.Cos(a)*d, pl.Y + math.Sin(a)*d
}

// GenerateWave produces a fresh ring wave: standard rings, one of each power
// kind at random, a warp pair, an ordered chain run, and sometimes a ghost.
// IDs are dense 0..n-1 so they double as stable entity handles.
func GenerateWave(planets []*Planet) []*Ring {
	var rings []*Ring
	id := 0
	add := func(typ RingType, value int) *Ring {
		x, y := ringSpot(planets)
		r := newRing(id, x, y, typ, value)
		rings = append(rings, r)
		id++
		return r
	}

	for i := 0; i < WaveStandardCount; i++ {
		add(RingStandard, StandardRingValue)
	}

	powerTypes := []RingType{RingPowerShield, RingPowerMagnet, RingPowerSlowmo, RingPowerMultiJump}
	for _, pt := range powerTypes {
		if randFloat() < 0.5 {
			add(pt, PowerRingValue)
		}
	}

	// Warp pair: collecting either collects both and relocates the player
	a := add(RingWarp, WarpRingValue)
	b := add(RingWarp, WarpRingValue)
	a.PairID = b.ID
	b.PairID = a.ID

	// Chain run, numbered 1..N, laid out along an arc so the order is flyable
	cx, cy := ringSpot(planets)
	baseAngle := randFloat() * 2 * math.Pi
	for i := 1; i <= WaveChainLength; i++ {
		angle := baseAngle + float64(i-1)*0.5
		x := cx + math.Cos(angle)*float64(i)*90
		y := cy + math.Sin(angle)*float64(i)*90
		r := newRing(id, x, y, RingChain, ChainRingValue)
		r.ChainNumber = i
		rings = append(rings, r)
		id++
	}

	if randFloat() < WaveGhostChance {
		add(RingGhost, GhostRingValue)
	}

	return rings
}

// ActiveRingCount returns the number of uncollected rings
func ActiveRingCount(rings []*Ring) int {
	n := 0
	for _, r := range rings {
		if !r.Collected {
			n++
		}
	}
	return n
}
