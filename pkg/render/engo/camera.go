// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// CameraSystem post-processes the game's camera: it zooms about the centre
// of the screen and shakes the view when the player is hit.
type CameraSystem struct {
	width, height float64

	zoom    float64
	minZoom float64
	maxZoom float64

	shake      float64
	shakeDecay float64
	shakeFrame int
	offset     physics.Vector2D

	buttons ButtonReader
}

// NewCameraSystem creates a camera for a width by height screen.
func NewCameraSystem(width, height float64, buttons ButtonReader) *CameraSystem {
	return &CameraSystem{
		width:      width,
		height:     height,
		zoom:       1.0,
		minZoom:    0.5,
		maxZoom:    2.0,
		shakeDecay: 0.8,
		buttons:    buttons,
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(ecs.BasicEntity) {}

// Update handles zoom input and advances the shake.
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()
	cs.advanceShake()
}

func (cs *CameraSystem) handleZoomInput() {
	if cs.buttons == nil {
		return
	}
	if cs.buttons.Down(ButtonZoomIn) {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if cs.buttons.Down(ButtonZoomOut) {
		cs.SetZoom(cs.zoom * 0.98)
	}
	if cs.buttons.JustPressed(ButtonResetZoom) {
		cs.SetZoom(1.0)
	}
}

// advanceShake alternates the view offset between quadrants with a
// decaying amplitude.
func (cs *CameraSystem) advanceShake() {
	if cs.shake < 0.5 {
		cs.shake = 0
		cs.offset = physics.Vector2D{}
		return
	}
	cs.shakeFrame++
	sx, sy := 1.0, 1.0
	if cs.shakeFrame%2 == 0 {
		sx = -1
	}
	if cs.shakeFrame%4 >= 2 {
		sy = -1
	}
	cs.offset = physics.Vector2D{X: sx * cs.shake, Y: sy * cs.shake / 2}
	cs.shake *= cs.shakeDecay
}

// Shake starts a shake of the given amplitude in pixels, unless a stronger
// one is already running.
func (cs *CameraSystem) Shake(amplitude float64) {
	cs.shake = max(cs.shake, amplitude)
}

// Offset returns the current shake offset.
func (cs *CameraSystem) Offset() physics.Vector2D {
	return cs.offset
}

// SetZoom sets the zoom level within limits
func (cs *CameraSystem) SetZoom(zoom float64) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float64 {
	return cs.zoom
}

func (cs *CameraSystem) clampZoom(zoom float64) float64 {
	return min(max(zoom, cs.minZoom), cs.maxZoom)
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(minZoom, maxZoom float64) {
	cs.minZoom = minZoom
	cs.maxZoom = maxZoom
	cs.zoom = cs.clampZoom(cs.zoom)
}

// Project maps a screen position from the game's camera through zoom and
// shake.
func (cs *CameraSystem) Project(screen physics.Vector2D) physics.Vector2D {
	center := physics.Vector2D{X: cs.width / 2, Y: cs.height / 2}
	return screen.Sub(center).Scale(cs.zoom).Add(center).Add(cs.offset)
}

// Unproject inverts Project.
func (cs *CameraSystem) Unproject(view physics.Vector2D) physics.Vector2D {
	center := physics.Vector2D{X: cs.width / 2, Y: cs.height / 2}
	return view.Sub(cs.offset).Sub(center).Scale(1 / cs.zoom).Add(center)
}

// Scale returns a length after zoom.
func (cs *CameraSystem) Scale(length float64) float64 {
	return length * cs.zoom
}
