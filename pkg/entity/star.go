// pkg/entity/star.go
package entity

import (
	"github.com/opd-ai/go-spacewarriors/pkg/physics"
)

// Star is background decoration.
type Star struct {
	BaseEntity
	Radius float64
}

// NewStar creates a star
func NewStar(position physics.Vector2D, radius float64) *Star {
	return &Star{
		BaseEntity: BaseEntity{
			ID:   GenerateID(),
			Body: physics.Body{Position: position},
		},
		Radius: radius,
	}
}

// GetKind returns KindStar
func (s *Star) GetKind() Kind {
	return KindStar
}

// Tick implements Updatable
func (s *Star) Tick(Frame) bool {
	return true
}

// Render implements Drawable
func (s *Star) Render(r Renderer, camera physics.Vector2D) {
	r.RenderStar(s, camera)
}
