package main

import (
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	// Extend the planet field when the player gets this close to the edge
	// of the outermost generated band
	BandExtendMargin = 700.0
	InitialBands     = 3
)

// Broadcaster sends messages to the session's client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game owns one session's world: one player, the planet field, the active
// ring wave, and the effect state. Entity lists are owned here exclusively
// and borrowed by the sim passes within a single update call, so no locking
// beyond the Game mutex is needed.
type Game struct {
	mu      sync.RWMutex
	player  *Player
	planets []*Planet
	rings   []*Ring
	effects *RingEffectState
	grid    *SpatialGrid
	events  Events
	client  Broadcaster

	now     float64 // accumulated, time-scaled simulation seconds
	tick    uint64
	running bool
	stop    chan struct{}

	pending  ClientInput
	hasInput bool

	score          int
	combo          int
	wave           int
	bestChain      int
	ringsCollected int
	planetsVisited map[int]bool
	maxBand        int
	startedAt      time.Time

	analytics *Analytics
	sessionID string
}

// NewGame creates a session world with the starting planet field and the
// first ring wave
func NewGame() *Game {
	g := &Game{
		effects:        NewRingEffectState(),
		grid:           NewSpatialGrid(),
		events:         nopEvents{},
		stop:           make(chan struct{}),
		planetsVisited: make(map[int]bool),
		startedAt:      time.Now(),
	}
	g.planets = append(g.planets, GenerateStartPlanet())
	for band := 1; band <= InitialBands; band++ {
		g.planets = GenerateBand(g.planets, band)
	}
	g.maxBand = InitialBands
	g.startWave()
	return g
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer creates the session's player. A session holds exactly one;
// a second call returns nil.
func (g *Game) AddPlayer(name string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player != nil {
		return nil
	}
	g.player = NewPlayer(GenerateID(4), name, g.planets[0])
	g.planetsVisited[0] = true
	return g.player
}

// RemovePlayer detaches the player and its client
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player != nil && g.player.ID == id {
		g.player = nil
		g.client = nil
		g.events = nopEvents{}
	}
}

// HasAnyPlayer reports whether the session's player slot is taken
func (g *Game) HasAnyPlayer() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.player != nil
}

// HasPlayer reports whether the given player id belongs to this session
func (g *Game) HasPlayer(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.player != nil && g.player.ID == id
}

// SetClient attaches the client connection that receives state and events
func (g *Game) SetClient(playerID string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player == nil || g.player.ID != playerID {
		return
	}
	g.client = client
	g.events = &clientEvents{c: client}
}

// SetAnalytics attaches the analytics sink for this session
func (g *Game) SetAnalytics(a *Analytics, sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.analytics = a
	g.sessionID = sessionID
}

// HandleInput stores the latest input; jump/dash edges are consumed on the
// next tick so gesture handling stays inside the frame pipeline
func (g *Game) HandleInput(playerID string, input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.player == nil || g.player.ID != playerID {
		return
	}
	// Keep an already-pending jump/dash edge until the tick consumes it
	input.Jump = input.Jump || (g.hasInput && g.pending.Jump)
	input.Dash = input.Dash || (g.hasInput && g.pending.Dash)
	g.pending = input
	g.hasInput = true
}

// RunSummary is what persists when a session ends
type RunSummary struct {
	Score          int
	RingsCollected int
	BestChain      int
	PlanetsVisited int
	Duration       float64
}

// Summary returns the run totals so far
func (g *Game) Summary() RunSummary {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return RunSummary{
		Score:          g.score,
		RingsCollected: g.ringsCollected,
		BestChain:      g.bestChain,
		PlanetsVisited: len(g.planetsVisited),
		Duration:       time.Since(g.startedAt).Seconds(),
	}
}

// startWave replaces the ring set with a fresh wave. Callers hold the lock.
func (g *Game) startWave() {
	g.wave++
	g.rings = GenerateWave(g.planets)
	g.effects.SetChainLength(WaveChainLength)
	g.events.WaveStart(g.wave, len(g.rings))
	if g.analytics != nil {
		g.analytics.Track(EvtRingWave, 0, g.sessionID, "")
	}
}

// update runs one frame: input -> motion -> broad phase rebuild -> planet
// landing -> ring collection -> effects -> timers -> wave check -> broadcast
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := (1.0 / float64(TickRate)) * g.effects.TimeScale()
	g.now += dt
	g.tick++

	p := g.player
	if p == nil {
		return
	}

	// Consume pending input edges
	if g.hasInput {
		in := g.pending
		g.hasInput = false
		g.pending.Jump = false
		g.pending.Dash = false
		if in.Jump {
			Jump(p, g.effects, in.Power, in.Angle)
		}
		if in.Dash {
			Dash(p, g.effects, in.TX, in.TY)
		}
	}

	// Motion
	if p.OnPlanet >= 0 && p.OnPlanet < len(g.planets) {
		UpdateOnPlanet(p, g.planets[p.OnPlanet], dt)
	} else {
		UpdateInSpace(p, g.planets, dt)
	}
	TickDashTimers(p, dt)
	p.RecordTrail()

	// Broad phase is rebuilt before any query in the same frame
	g.grid.Rebuild(g.planets, g.rings)

	// Planet landing
	if idx := CheckPlanetCollisions(p, g.planets, g.grid); idx >= 0 {
		landed := HandlePlanetLanding(p, g.planets, idx)
		if landed >= 0 {
			g.planetsVisited[landed] = true
			g.combo = 0
			g.events.PlayLand()
			g.events.Burst(p.X, p.Y, LandBurstParticles)
		}
	}

	// Ring collection
	for _, r := range CheckRingCollisions(p, g.rings, g.grid, g.now) {
		wasWarp := r.Type == RingWarp
		value := g.effects.CollectRing(r, p, g.rings, g.now)
		if value == 0 {
			continue
		}
		g.score += value
		g.combo++
		g.ringsCollected++
		if c := g.effects.BestChain(); c > g.bestChain {
			g.bestChain = c
		}
		g.events.AddScore(value)
		g.events.AddCombo(g.combo)
		g.events.PlayCollectRing()
		g.events.Burst(r.X, r.Y, RingBurstParticles)
		if wasWarp {
			g.events.Warp(p.X, p.Y)
			g.events.Burst(p.X, p.Y, WarpBurstParticles)
			if g.analytics != nil {
				g.analytics.Track(EvtWarp, p.AuthPlayerID, g.sessionID, "")
			}
		}
	}

	// Continuous effects and expiry
	g.effects.ApplyMagnet(p, g.rings, dt)
	g.effects.UpdatePowers(p, g.now)

	// Wave exhausted: request regeneration
	if ActiveRingCount(g.rings) == 0 {
		g.startWave()
	}

	// Extend the planet field as the player pushes outward
	g.extendWorld(p)

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// extendWorld appends planet bands ahead of the player. Planets are only
// ever appended, never removed, so indices held by OnPlanet stay valid.
func (g *Game) extendWorld(p *Player) {
	dist := Distance(0, 0, p.X, p.Y)
	edge := float64(g.maxBand) * PlanetBandSpacing
	for dist > edge-BandExtendMargin && edge < MaxWorldRadius {
		g.maxBand++
		g.planets = GenerateBand(g.planets, g.maxBand)
		edge = float64(g.maxBand) * PlanetBandSpacing
	}
}

// broadcastState sends the msgpack state frame to the session's client
func (g *Game) broadcastState() {
	if g.client == nil {
		return
	}
	state := g.snapshotState()
	data, err := msgpack.Marshal(&state)
	if err != nil {
		log.Printf("game: state marshal error: %v", err)
		return
	}
	g.client.SendBinary(data)
}

// snapshotState builds the wire representation of the world. Callers hold
// the lock.
func (g *Game) snapshotState() GameState {
	p := g.player
	state := GameState{
		Tick:      g.tick,
		Now:       round1(g.now),
		TimeScale: g.effects.TimeScale(),
		Score:     g.score,
		Combo:     g.combo,
		Chain:     g.effects.CurrentChain(),
		Wave:      g.wave,
		Player: PlayerState{
			X:          round1(p.X),
			Y:          round1(p.Y),
			VX:         round1(p.VX),
			VY:         round1(p.VY),
			OnPlanet:   p.OnPlanet,
			OrbitAngle: round1(p.OrbitAngle),
			Dashing:    p.IsDashing,
			DashCD:     round1(p.DashCooldown),
			Shield:     p.HasShield,
			Magnet:     p.MagnetRange,
			ExtraJumps: p.ExtraJumps,
			Trail:      p.Trail,
		},
	}
	for _, pl := range g.planets {
		state.Planets = append(state.Planets, PlanetState{
			ID:     pl.ID,
			X:      round1(pl.X),
			Y:      round1(pl.Y),
			Radius: pl.Radius,
			Spin:   pl.Spin,
			Type:   int(pl.Type),
		})
	}
	for _, r := range g.rings {
		if r.Collected {
			continue
		}
		state.Rings = append(state.Rings, RingState{
			ID:       r.ID,
			X:        round1(r.X),
			Y:        round1(r.Y),
			Outer:    r.OuterRadius,
			Inner:    r.InnerRadius,
			Type:     int(r.Type),
			ChainNum: r.ChainNumber,
			Tangible: r.GhostTangible(g.now),
		})
	}
	for _, pt := range []PowerType{PowerShield, PowerMagnet, PowerSlowmo, PowerMultiJump, PowerSpeed} {
		if rem := g.effects.Remaining(pt, g.now); rem > 0 {
			state.Powers = append(state.Powers, PowerStateMsg{Type: int(pt), Remaining: round1(rem)})
		}
	}
	return state
}
