package main

import (
	"testing"
	"time"
)

// recordingEvents captures collaborator traffic for assertions
type recordingEvents struct {
	scores []int
	combos []int
	sounds []string
	bursts int
	warps  int
	waves  int
}

func (e *recordingEvents) AddScore(amount int)       { e.scores = append(e.scores, amount) }
func (e *recordingEvents) AddCombo(combo int)        { e.combos = append(e.combos, combo) }
func (e *recordingEvents) PlayLand()                 { e.sounds = append(e.sounds, "land") }
func (e *recordingEvents) PlayCollectRing()          { e.sounds = append(e.sounds, "ring") }
func (e *recordingEvents) Burst(x, y float64, n int) { e.bursts++ }
func (e *recordingEvents) Warp(x, y float64)         { e.warps++ }
func (e *recordingEvents) WaveStart(w, n int)        { e.waves++ }

// testGame builds a bare session world without the generated planet field so
// tests control every entity
func testGame(events Events) *Game {
	return &Game{
		effects:        NewRingEffectState(),
		grid:           NewSpatialGrid(),
		events:         events,
		stop:           make(chan struct{}),
		planetsVisited: make(map[int]bool),
		startedAt:      time.Now(),
	}
}

func TestNewGameSetsUpWorld(t *testing.T) {
	g := NewGame()

	if len(g.planets) == 0 {
		t.Fatal("new game should generate planets")
	}
	if g.planets[0].X != 0 || g.planets[0].Y != 0 {
		t.Error("start planet should sit at the origin")
	}
	if g.wave != 1 {
		t.Errorf("wave = %d, want 1", g.wave)
	}
	if ActiveRingCount(g.rings) == 0 {
		t.Error("new game should carry an active ring wave")
	}
}

func TestAddPlayerSingleSlot(t *testing.T) {
	g := NewGame()

	p := g.AddPlayer("Ada")
	if p == nil {
		t.Fatal("first AddPlayer should succeed")
	}
	if p.OnPlanet != 0 {
		t.Error("player should spawn on the start planet")
	}
	if g.AddPlayer("Eve") != nil {
		t.Error("second AddPlayer must return nil")
	}
	if !g.HasPlayer(p.ID) || !g.HasAnyPlayer() {
		t.Error("player lookup failed")
	}

	g.RemovePlayer(p.ID)
	if g.HasAnyPlayer() {
		t.Error("player should be gone after removal")
	}
}

func TestHandleInputPreservesEdges(t *testing.T) {
	g := NewGame()
	p := g.AddPlayer("Ada")

	g.HandleInput(p.ID, ClientInput{Jump: true, Power: 400})
	// A later input without the edge must not erase the pending jump
	g.HandleInput(p.ID, ClientInput{Power: 200})

	if !g.pending.Jump {
		t.Error("pending jump edge was lost")
	}

	g.update()
	if p.OnPlanet != -1 {
		t.Error("consumed jump should launch the player")
	}
	if g.pending.Jump {
		t.Error("jump edge should be consumed by the tick")
	}
}

func TestHandleInputIgnoresUnknownPlayer(t *testing.T) {
	g := NewGame()
	g.AddPlayer("Ada")

	g.HandleInput("nobody", ClientInput{Jump: true})
	if g.hasInput {
		t.Error("input from an unknown player must be dropped")
	}
}

func TestUpdateCollectsRingAndFiresEvents(t *testing.T) {
	rec := &recordingEvents{}
	g := testGame(rec)
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 2000, Y: 2000}
	g.rings = []*Ring{newRing(0, 2000, 2030, RingStandard, StandardRingValue)}
	g.rings = append(g.rings, newRing(1, -3000, -3000, RingStandard, StandardRingValue))

	g.update()

	if g.score != StandardRingValue {
		t.Errorf("score = %d, want %d", g.score, StandardRingValue)
	}
	if g.combo != 1 || g.ringsCollected != 1 {
		t.Errorf("combo = %d rings = %d, want 1 and 1", g.combo, g.ringsCollected)
	}
	if len(rec.scores) != 1 || rec.scores[0] != StandardRingValue {
		t.Errorf("score events = %v, want one of %d", rec.scores, StandardRingValue)
	}
	if len(rec.combos) != 1 || rec.combos[0] != 1 {
		t.Errorf("combo events = %v, want [1]", rec.combos)
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != "ring" {
		t.Errorf("sounds = %v, want [ring]", rec.sounds)
	}
	if rec.bursts != 1 {
		t.Errorf("bursts = %d, want 1", rec.bursts)
	}
}

func TestUpdateLandingResetsCombo(t *testing.T) {
	rec := &recordingEvents{}
	g := testGame(rec)
	g.planets = []*Planet{{ID: 0, X: 0, Y: 0, Radius: 50}}
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 55, Y: 0}
	g.combo = 7

	g.update()

	if g.player.OnPlanet != 0 {
		t.Fatal("player should have landed")
	}
	if g.combo != 0 {
		t.Errorf("combo = %d, want reset to 0 on landing", g.combo)
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != "land" {
		t.Errorf("sounds = %v, want [land]", rec.sounds)
	}
	if !g.planetsVisited[0] {
		t.Error("landing should mark the planet visited")
	}
}

func TestUpdateRegeneratesExhaustedWave(t *testing.T) {
	rec := &recordingEvents{}
	g := testGame(rec)
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 9000, Y: 9000}
	g.rings = []*Ring{newRing(0, 0, 0, RingStandard, 10)}
	g.rings[0].Collected = true
	g.wave = 3

	g.update()

	if g.wave != 4 {
		t.Errorf("wave = %d, want 4", g.wave)
	}
	if ActiveRingCount(g.rings) == 0 {
		t.Error("regenerated wave should carry active rings")
	}
	if rec.waves != 1 {
		t.Errorf("wave events = %d, want 1", rec.waves)
	}
}

func TestUpdateWarpFiresWarpEvent(t *testing.T) {
	rec := &recordingEvents{}
	g := testGame(rec)
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 2000, Y: 2000}

	a := newRing(0, 2000, 2030, RingWarp, WarpRingValue)
	b := newRing(1, -2500, -2500, RingWarp, WarpRingValue)
	a.PairID = b.ID
	b.PairID = a.ID
	// A filler ring keeps the wave alive so no regeneration kicks in
	filler := newRing(2, 3500, 3500, RingStandard, 10)
	g.rings = []*Ring{a, b, filler}

	g.update()

	if rec.warps != 1 {
		t.Fatalf("warp events = %d, want 1", rec.warps)
	}
	if g.player.X != b.X || g.player.Y != b.Y {
		t.Error("player should sit at the warp destination")
	}
	if !a.Collected || !b.Collected {
		t.Error("both warp rings should be collected")
	}
}

func TestUpdateTracksBestChain(t *testing.T) {
	g := testGame(&recordingEvents{})
	g.effects.SetChainLength(4)
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 2000, Y: 2000}

	c1 := newRing(0, 2000, 2030, RingChain, ChainRingValue)
	c1.ChainNumber = 1
	filler := newRing(1, -3000, -3000, RingStandard, 10)
	g.rings = []*Ring{c1, filler}

	g.update()

	if g.bestChain != 1 {
		t.Errorf("best chain = %d, want 1", g.bestChain)
	}
}

func TestUpdateBestChainCountsCompletion(t *testing.T) {
	g := testGame(&recordingEvents{})
	g.effects.SetChainLength(3)
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 2000, Y: 2000}

	// All three chain rings overlap the player; grid candidates keep insertion
	// order, so the run completes in order within one tick.
	rings := make([]*Ring, 0, 4)
	for i := 1; i <= 3; i++ {
		r := newRing(i-1, 2000, 2030, RingChain, ChainRingValue)
		r.ChainNumber = i
		rings = append(rings, r)
	}
	rings = append(rings, newRing(3, -3000, -3000, RingStandard, 10))
	g.rings = rings

	g.update()

	// A completed 3-chain must record 3, not the reset cursor minus one
	if g.bestChain != 3 {
		t.Errorf("best chain = %d, want 3 after completing a 3-chain in order", g.bestChain)
	}
	if got := g.Summary().BestChain; got != 3 {
		t.Errorf("summary best chain = %d, want 3", got)
	}
}

func TestUpdateSlowmoScalesDt(t *testing.T) {
	g := testGame(&recordingEvents{})
	g.player = &Player{ID: "p1", Radius: PlayerRadius, OnPlanet: -1, X: 9000, Y: 9000}
	g.rings = []*Ring{newRing(0, 0, 0, RingStandard, 10)}

	g.update()
	normalStep := g.now

	g.effects.ActivatePower(PowerSlowmo, g.now)
	before := g.now
	g.update()
	slowStep := g.now - before

	if slowStep >= normalStep {
		t.Errorf("slowmo step %v should be shorter than normal step %v", slowStep, normalStep)
	}
}

func TestUpdateWithoutPlayerIsIdle(t *testing.T) {
	g := testGame(&recordingEvents{})
	g.rings = []*Ring{newRing(0, 0, 0, RingStandard, 10)}

	g.update()
	if g.score != 0 || g.rings[0].Collected {
		t.Error("empty session must not simulate collection")
	}
}

func TestExtendWorldAppendsBands(t *testing.T) {
	g := NewGame()
	p := g.AddPlayer("Ada")

	before := len(g.planets)
	bandBefore := g.maxBand

	p.OnPlanet = -1
	p.X = float64(g.maxBand)*PlanetBandSpacing - BandExtendMargin + 450
	p.Y = 0
	g.update()

	if g.maxBand <= bandBefore {
		t.Fatalf("maxBand = %d, want growth past %d", g.maxBand, bandBefore)
	}
	if len(g.planets) <= before {
		t.Error("extension should append planets")
	}
	// Indices stay stable: IDs are still dense
	for i, pl := range g.planets {
		if pl.ID != i {
			t.Fatalf("planet at slot %d has ID %d", i, pl.ID)
		}
	}
}

func TestSummary(t *testing.T) {
	g := testGame(&recordingEvents{})
	g.score = 420
	g.ringsCollected = 12
	g.bestChain = 3
	g.planetsVisited[0] = true
	g.planetsVisited[4] = true

	sum := g.Summary()
	if sum.Score != 420 || sum.RingsCollected != 12 || sum.BestChain != 3 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.PlanetsVisited != 2 {
		t.Errorf("planets visited = %d, want 2", sum.PlanetsVisited)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g := NewGame()
	go g.Run()
	time.Sleep(2 * TickDuration)
	g.Stop()
	g.Stop() // second call must not panic on a closed channel
}
