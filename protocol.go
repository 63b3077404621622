package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create" // create session
	MsgList     = "list"   // list sessions
	MsgCheck    = "check"  // check if session exists
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // token re-auth
	MsgProfile  = "profile"
	MsgTop      = "top" // leaderboard request
)

// Server -> Client message types
const (
	MsgState       = "state" // binary msgpack frames, not JSON
	MsgWelcome     = "welcome"
	MsgJoined      = "joined"
	MsgCreated     = "created"
	MsgSessions    = "sessions"
	MsgChecked     = "checked"
	MsgError       = "error"
	MsgScore       = "score"
	MsgCombo       = "combo"
	MsgSound       = "sound"
	MsgBurst       = "burst"
	MsgWarp        = "warp"
	MsgWave        = "wave"
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
	MsgTopData     = "top_data"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids
// double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput carries the charge-and-release gesture. Angle/Power describe
// the pull; Jump and Dash are edge-triggered. Invalid attempts are ignored
// server-side (the sim returns false and mutates nothing).
type ClientInput struct {
	Angle float64 `json:"a"`  // pull angle, radians
	Power float64 `json:"p"`  // pull power
	Jump  bool    `json:"j"`  // release -> launch
	Dash  bool    `json:"d"`  // dash toward (tx, ty)
	TX    float64 `json:"tx"` // dash target world X
	TY    float64 `json:"ty"` // dash target world Y
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
}

// --- binary world-state broadcast (msgpack) ---

// PlayerState is the player part of each state frame
type PlayerState struct {
	X          float64      `msgpack:"x"`
	Y          float64      `msgpack:"y"`
	VX         float64      `msgpack:"vx"`
	VY         float64      `msgpack:"vy"`
	OnPlanet   int          `msgpack:"pl"` // -1 in space
	OrbitAngle float64      `msgpack:"oa"`
	Dashing    bool         `msgpack:"dsh"`
	DashCD     float64      `msgpack:"dcd"`
	Shield     bool         `msgpack:"sh"`
	Magnet     float64      `msgpack:"mg"`
	ExtraJumps int          `msgpack:"ej"`
	Trail      []TrailPoint `msgpack:"tr"`
}

// PlanetState is broadcast per planet
type PlanetState struct {
	ID     int     `msgpack:"id"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
	Spin   float64 `msgpack:"sp"`
	Type   int     `msgpack:"ty"`
}

// RingState is broadcast per uncollected ring
type RingState struct {
	ID       int     `msgpack:"id"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Outer    float64 `msgpack:"or"`
	Inner    float64 `msgpack:"ir"`
	Type     int     `msgpack:"ty"`
	ChainNum int     `msgpack:"cn,omitempty"`
	Tangible bool    `msgpack:"tg"`
}

// PowerStateMsg is one active power and its remaining time
type PowerStateMsg struct {
	Type      int     `msgpack:"ty"`
	Remaining float64 `msgpack:"rem"`
}

// GameState is the full binary state frame
type GameState struct {
	Tick      uint64          `msgpack:"tick"`
	Now       float64         `msgpack:"now"`
	TimeScale float64         `msgpack:"ts"`
	Player    PlayerState     `msgpack:"p"`
	Planets   []PlanetState   `msgpack:"pls"`
	Rings     []RingState     `msgpack:"rs"`
	Powers    []PowerStateMsg `msgpack:"pw"`
	Score     int             `msgpack:"sc"`
	Combo     int             `msgpack:"cb"`
	Chain     int             `msgpack:"ch"`
	Wave      int             `msgpack:"wv"`
}

// --- JSON control messages ---

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	ID   string `json:"id"`
	Name string `json:"n"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// CheckMsg is sent by a client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID    string `json:"sid"`
	Exists bool   `json:"exists"`
	Name   string `json:"name,omitempty"`
}

// ScoreMsg reports points awarded
type ScoreMsg struct {
	Amount int `json:"amt"`
}

// ComboMsg reports the current combo counter
type ComboMsg struct {
	Combo int `json:"c"`
}

// SoundMsg names an audio cue for the client to play
type SoundMsg struct {
	Cue string `json:"cue"`
}

// BurstMsg asks the client to spawn a particle burst
type BurstMsg struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Count int     `json:"n"`
}

// WarpMsg reports a warp-pair teleport destination
type WarpMsg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WaveMsg announces a fresh ring wave
type WaveMsg struct {
	Wave  int `json:"w"`
	Rings int `json:"n"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates by password
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg authenticates by stored token
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"tok"`
	Username string `json:"u"`
	PlayerID int64  `json:"pid"`
}

// ProfileDataMsg carries lifetime stats
type ProfileDataMsg struct {
	Username   string  `json:"u"`
	BestScore  int     `json:"best"`
	BestChain  int     `json:"chain"`
	TotalRings int     `json:"rings"`
	Runs       int     `json:"runs"`
	Playtime   float64 `json:"pt"`
}

// TopMsg requests a leaderboard
type TopMsg struct {
	OrderBy string `json:"by"`
	Limit   int    `json:"lim"`
}
