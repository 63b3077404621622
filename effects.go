package main

import "math"

// PowerType identifies a time-limited power granted by a ring
type PowerType int

const (
	PowerShield PowerType = iota
	PowerMagnet
	PowerSlowmo
	PowerMultiJump
	PowerSpeed // granted by ghost rings, boosts the next jumps
)

// Power durations in seconds
const (
	ShieldDuration    = 8.0
	MagnetDuration    = 10.0
	SlowmoDuration    = 5.0
	MultiJumpDuration = 12.0
	SpeedDuration     = 6.0

	MagnetRange     = 150.0
	MagnetPullSpeed = 220.0 // px/s the ring drifts toward the player
	SlowmoTimeScale = 0.5
)

func powerDuration(p PowerType) float64 {
	switch p {
	case PowerShield:
		return ShieldDuration
	case PowerMagnet:
		return MagnetDuration
	case PowerSlowmo:
		return SlowmoDuration
	case PowerMultiJump:
		return MultiJumpDuration
	case PowerSpeed:
		return SpeedDuration
	default:
		return 0
	}
}

// RingEffectState holds all per-session effect state: active powers, chain
// progress, and the length of the current wave's chain run. Owned by the
// session's Game, never global, so sessions stay independent and tests
// deterministic.
type RingEffectState struct {
	powers       map[PowerType]float64 // power -> expiry time; presence means active
	currentChain int
	chainLength  int
	bestRun      int     // longest in-order chain run seen this session
	lastNow      float64 // most recent simulation time seen by the state
}

// NewRingEffectState creates an empty effect state
func NewRingEffectState() *RingEffectState {
	return &RingEffectState{
		powers:       make(map[PowerType]float64),
		currentChain: 1,
	}
}

// SetChainLength records how many chain rings the current wave carries
func (s *RingEffectState) SetChainLength(n int) {
	s.chainLength = n
	s.currentChain = 1
}

// CurrentChain returns the 1-based chain cursor
func (s *RingEffectState) CurrentChain() int {
	return s.currentChain
}

// BestChain returns the longest in-order chain run collected so far. It keeps
// counting across waves and survives the cursor reset on completion, so a
// finished N-chain reports N, not N-1.
func (s *RingEffectState) BestChain() int {
	return s.bestRun
}

// IsActive reports whether a power entry exists and has not expired
func (s *RingEffectState) IsActive(p PowerType) bool {
	return s.isActiveAt(p, s.lastNow)
}

func (s *RingEffectState) isActiveAt(p PowerType, now float64) bool {
	expiry, ok := s.powers[p]
	return ok && expiry > now
}

// TimeScale returns the global simulation speed multiplier: 0.5 while
// slow-motion is active, else 1.0
func (s *RingEffectState) TimeScale() float64 {
	if s.IsActive(PowerSlowmo) {
		return SlowmoTimeScale
	}
	return 1.0
}

// Remaining returns the seconds left on a power, zero when inactive
func (s *RingEffectState) Remaining(p PowerType, now float64) float64 {
	expiry, ok := s.powers[p]
	if !ok || expiry <= now {
		return 0
	}
	return expiry - now
}

// ActivatePower starts (or restarts) a power. Re-collecting an active power
// replaces its expiry — last collection wins, it never stacks.
func (s *RingEffectState) ActivatePower(p PowerType, now float64) {
	s.touch(now)
	s.powers[p] = now + powerDuration(p)
}

// UpdatePowers removes every power whose expiry has passed and clears the
// player modifiers those powers were backing. Idempotent: a removed entry is
// never reactivated.
func (s *RingEffectState) UpdatePowers(player *Player, now float64) {
	s.touch(now)
	for p, expiry := range s.powers {
		if expiry > now {
			continue
		}
		delete(s.powers, p)
		if player == nil {
			continue
		}
		switch p {
		case PowerShield:
			player.HasShield = false
		case PowerMagnet:
			player.MagnetRange = 0
		case PowerMultiJump:
			player.ExtraJumps = 0
		}
	}
}

func (s *RingEffectState) touch(now float64) {
	if now > s.lastNow {
		s.lastNow = now
	}
}

// CollectRing applies a single ring's effect and returns its scored value.
// The collected flag is monotonic: re-collection is a no-op worth zero.
func (s *RingEffectState) CollectRing(r *Ring, player *Player, rings []*Ring, now float64) int {
	if r == nil || r.Collected {
		return 0
	}
	s.touch(now)
	r.Collected = true

	switch r.Type {
	case RingStandard:
		return r.Value

	case RingPowerShield:
		s.ActivatePower(PowerShield, now)
		player.HasShield = true
		return r.Value

	case RingPowerMagnet:
		s.ActivatePower(PowerMagnet, now)
		player.MagnetRange = MagnetRange
		return r.Value

	case RingPowerSlowmo:
		s.ActivatePower(PowerSlowmo, now)
		return r.Value

	case RingPowerMultiJump:
		s.ActivatePower(PowerMultiJump, now)
		player.ExtraJumps++
		return r.Value

	case RingGhost:
		s.ActivatePower(PowerSpeed, now)
		return r.Value

	case RingWarp:
		// The pair is collected atomically with this ring, never separately,
		// and the player relocates to the pair's position.
		if pair := findRing(rings, r.PairID); pair != nil && !pair.Collected {
			pair.Collected = true
			player.X = pair.X
			player.Y = pair.Y
			player.OnPlanet = -1
		}
		return r.Value

	case RingChain:
		if r.ChainNumber == s.currentChain {
			if r.ChainNumber > s.bestRun {
				s.bestRun = r.ChainNumber
			}
			if s.chainLength > 0 && r.ChainNumber == s.chainLength {
				// Completed in order: bonus exactly once, then start over
				s.currentChain = 1
				return r.Value + s.chainLength*ChainBonusPerRing
			}
			s.currentChain++
			return r.Value
		}
		// Out of order: progress resets, the ring still pays base value
		s.currentChain = 1
		return r.Value
	}
	return r.Value
}

// ApplyMagnet drifts every uncollected ring inside the player's magnet range
// toward the player. Continuous attraction: the step is capped below the
// remaining distance so the gap strictly decreases but never overshoots.
func (s *RingEffectState) ApplyMagnet(player *Player, rings []*Ring, dt float64) {
	if player == nil || player.MagnetRange <= 0 {
		return
	}
	rangeSq := player.MagnetRange * player.MagnetRange
	for _, r := range rings {
		if r.Collected {
			continue
		}
		dx := player.X - r.X
		dy := player.Y - r.Y
		d2 := dx*dx + dy*dy
		if d2 > rangeSq || d2 == 0 {
			continue
		}
		d := math.Sqrt(d2)
		step := MagnetPullSpeed * dt
		if step > d*0.9 {
			step = d * 0.9
		}
		r.X += dx / d * step
		r.Y += dy / d * step
	}
}

func findRing(rings []*Ring, id int) *Ring {
	for _, r := range rings {
		if r.ID == id {
			return r
		}
	}
	return nil
}
