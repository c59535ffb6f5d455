package scenes

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	math2 "github.com/yohamta/donburi/features/math"
)

// ActionID represents a logical course action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionRespawn
	ActionSaveTuning
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	Bindings: map[ActionID]InputBinding{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX, ebiten.KeyW},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionRespawn: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Back / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
		},
		ActionSaveTuning: {
			Keys: []ebiten.Key{ebiten.KeyF5},
		},
	},
}

// inputFrame is one poll of every bound action plus the analog move vector.
type inputFrame struct {
	Move      math2.Vec2
	Pressed   [ActionCount]bool
	Triggered [ActionCount]bool
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollInput reads keyboard and gamepads. Digital directions produce a unit
// axis; the left stick overrides them when outside the deadzone so partial
// tilts reach the controller unchanged.
func pollInput() inputFrame {
	var frame inputFrame
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				frame.Pressed[actionID] = true
			}
			if inpututil.IsKeyJustPressed(key) {
				frame.Triggered[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					frame.Pressed[actionID] = true
				}
				if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
					frame.Triggered[actionID] = true
				}
			}
		}
	}

	frame.Move = math2.Vec2{
		X: axis(frame.Pressed[ActionMoveLeft], frame.Pressed[ActionMoveRight]),
		Y: axis(frame.Pressed[ActionMoveDown], frame.Pressed[ActionMoveUp]),
	}
	if x, y, ok := analogStick(gamepadIDs); ok {
		frame.Move = math2.Vec2{X: x, Y: y}
	}
	return frame
}

func axis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	default:
		return 0
	}
}

// analogStick returns the first left stick outside the deadzone, y-up.
func analogStick(gamepads []ebiten.GamepadID) (x, y float64, ok bool) {
	deadzone := Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(horizontal) < deadzone && math.Abs(vertical) < deadzone {
			continue
		}
		return horizontal, -vertical, true
	}
	return 0, 0, false
}
