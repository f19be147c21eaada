// pkg/render/ebiten/input.go
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-spacewarriors/pkg/engine"
)

// KeyReader reports keyboard state.
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Keyboard returns a KeyReader over the ebiten keyboard.
func Keyboard() KeyReader {
	return ebitenKeys{}
}

// Key bindings, each action listing its keys
var (
	keysThrust    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keysReverse   = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	keysTurnLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysTurnRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysFire      = []ebiten.Key{ebiten.KeySpace}
	keysRestart   = []ebiten.Key{ebiten.KeyR}
	keysQuit      = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// ReadControls samples k. Movement follows held keys; fire, restart and
// quit trigger once per press.
func ReadControls(k KeyReader) engine.Controls {
	return engine.Controls{
		Thrust:    anyKey(keysThrust, k.IsKeyPressed),
		Reverse:   anyKey(keysReverse, k.IsKeyPressed),
		TurnLeft:  anyKey(keysTurnLeft, k.IsKeyPressed),
		TurnRight: anyKey(keysTurnRight, k.IsKeyPressed),
		Fire:      anyKey(keysFire, k.IsKeyJustPressed),
		Restart:   anyKey(keysRestart, k.IsKeyJustPressed),
		Quit:      anyKey(keysQuit, k.IsKeyJustPressed),
	}
}
