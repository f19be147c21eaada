// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
)

// Button names registered with engo.Input
const (
	ButtonTurnLeft  = "turnLeft"
	ButtonTurnRight = "turnRight"
	ButtonThrust    = "thrust"
	ButtonReverse   = "reverse"
	ButtonFire      = "fire"
	ButtonRestart   = "restart"
	ButtonQuit      = "quit"
	ButtonZoomIn    = "zoomIn"
	ButtonZoomOut   = "zoomOut"
	ButtonResetZoom = "resetZoom"
)

// ButtonReader reports the state of named buttons.
type ButtonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// engoButtons reads from the global engo input manager.
type engoButtons struct{}

func (engoButtons) Down(name string) bool {
	return engo.Input.Button(name).Down()
}

func (engoButtons) JustPressed(name string) bool {
	return engo.Input.Button(name).JustPressed()
}

// EngoButtons returns a ButtonReader over engo.Input.
func EngoButtons() ButtonReader {
	return engoButtons{}
}

// InputSystem samples the keyboard once per engo frame and keeps the
// resulting controls for the game system.
type InputSystem struct {
	buttons  ButtonReader
	controls engine.Controls
}

// NewInputSystem creates a new input system
func NewInputSystem(buttons ButtonReader) *InputSystem {
	return &InputSystem{buttons: buttons}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(ecs.BasicEntity) {}

// Priority runs input ahead of the game system.
func (is *InputSystem) Priority() int {
	return 20
}

// Update samples the buttons.
func (is *InputSystem) Update(dt float32) {
	b := is.buttons
	is.controls = engine.Controls{
		TurnLeft:  b.Down(ButtonTurnLeft),
		TurnRight: b.Down(ButtonTurnRight),
		Thrust:    b.Down(ButtonThrust),
		Reverse:   b.Down(ButtonReverse),
		Fire:      b.JustPressed(ButtonFire),
		Restart:   b.JustPressed(ButtonRestart),
		Quit:      b.JustPressed(ButtonQuit),
	}
}

// Poll implements engine.InputSource. It returns the last sample.
func (is *InputSystem) Poll() engine.Controls {
	return is.controls
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonReverse, engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonTurnLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonTurnRight, engo.KeyD, engo.KeyArrowRight)

	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonRestart, engo.KeyR)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)

	engo.Input.RegisterButton(ButtonZoomIn, engo.KeyEquals)
	engo.Input.RegisterButton(ButtonZoomOut, engo.KeyDash)
	engo.Input.RegisterButton(ButtonResetZoom, engo.KeyZero)
}
