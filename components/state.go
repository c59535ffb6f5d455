package components

import (
	"github.com/automoto/doomerang-kinetics/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // Ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
