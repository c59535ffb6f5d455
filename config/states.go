package config

// StateID is the derived movement state used for rendering and the HUD.
type StateID int

const (
	StateIdle StateID = iota
	StateRunning
	StateJump
	StateFall
	StateWallCling
	StateFloat // inside the apex zero gravity window
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJump:
		return "jump"
	case StateFall:
		return "fall"
	case StateWallCling:
		return "wall_cling"
	case StateFloat:
		return "float"
	default:
		return "unknown"
	}
}

// DirectionRight is the facing a player spawns with.
const DirectionRight = 1.0
