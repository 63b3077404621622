package main

// Events is the collaborator surface the simulation core fires into:
// scoring, combo, audio cues, and particle bursts. Implementations own all
// formatting and transport; the sim never encodes or logs in these paths.
// Every call is fire-and-forget.
type Events interface {
	AddScore(amount int)
	AddCombo(combo int)
	PlayLand()
	PlayCollectRing()
	Burst(x, y float64, count int)
	Warp(x, y float64)
	WaveStart(wave, ringCount int)
}

// Particle counts per burst kind
const (
	LandBurstParticles = 12
	RingBurstParticles = 8
	WarpBurstParticles = 20
)

// clientEvents forwards collaborator calls to the session's client as
// protocol messages
type clientEvents struct {
	c Broadcaster
}

func (e *clientEvents) AddScore(amount int) {
	e.c.SendJSON(Envelope{T: MsgScore, Data: ScoreMsg{Amount: amount}})
}

func (e *clientEvents) AddCombo(combo int) {
	e.c.SendJSON(Envelope{T: MsgCombo, Data: ComboMsg{Combo: combo}})
}

func (e *clientEvents) PlayLand() {
	e.c.SendJSON(Envelope{T: MsgSound, Data: SoundMsg{Cue: "land"}})
}

func (e *clientEvents) PlayCollectRing() {
	e.c.SendJSON(Envelope{T: MsgSound, Data: SoundMsg{Cue: "ring"}})
}

func (e *clientEvents) Burst(x, y float64, count int) {
	e.c.SendJSON(Envelope{T: MsgBurst, Data: BurstMsg{X: round1(x), Y: round1(y), Count: count}})
}

func (e *clientEvents) Warp(x, y float64) {
	e.c.SendJSON(Envelope{T: MsgWarp, Data: WarpMsg{X: round1(x), Y: round1(y)}})
}

func (e *clientEvents) WaveStart(wave, ringCount int) {
	e.c.SendJSON(Envelope{T: MsgWave, Data: WaveMsg{Wave: wave, Rings: ringCount}})
}

// nopEvents swallows everything; used before a client attaches and in tests
// that don't care about collaborator traffic
type nopEvents struct{}

func (nopEvents) AddScore(int)                {}
func (nopEvents) AddCombo(int)                {}
func (nopEvents) PlayLand()                   {}
func (nopEvents) PlayCollectRing()            {}
func (nopEvents) Burst(float64, float64, int) {}
func (nopEvents) Warp(float64, float64)       {}
func (nopEvents) WaveStart(int, int)          {}
