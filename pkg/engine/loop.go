// pkg/engine/loop.go
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-spacewarriors/pkg/entity"
)

// InputSource supplies the controls for the next frame
type InputSource interface {
	Poll() Controls
}

// InputFunc adapts a function to InputSource
type InputFunc func() Controls

// Poll calls f
func (f InputFunc) Poll() Controls {
	return f()
}

// Run drives the game at the configured frame rate until ctx is cancelled
// or the input asks to quit. It renders once per frame after updating.
func (g *Game) Run(ctx context.Context, input InputSource, r entity.Renderer) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.Config.Display.FPS))
	defer ticker.Stop()

	g.logger.Info(ctx, "game loop starting", "fps", g.Config.Display.FPS)
	for {
		select {
		case <-ticker.C:
			in := input.Poll()
			if in.Quit {
				g.logger.Info(ctx, "game loop stopping", "frame", g.Frame, "score", g.Score)
				return nil
			}
			g.Update(ctx, in)
			g.Render(r)
		case <-ctx.Done():
			g.logger.Info(ctx, "game loop cancelled", "frame", g.Frame)
			return ctx.Err()
		}
	}
}
